package salonv1

import (
	"testing"

	"google.golang.org/grpc/encoding"
)

func TestJSONCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	if c == nil {
		t.Fatalf("codec %q not registered", CodecName)
	}

	b, err := c.Marshal(&BookAppointmentRequest{ServiceID: "s1", Date: "2024-06-01", StartTime: "09:00"})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `{"service_id":"s1","date":"2024-06-01","start_time":"09:00"}` {
		t.Fatalf("wire form = %s", b)
	}

	var empty ListMyAppointmentsRequest
	if err := c.Unmarshal(nil, &empty); err != nil {
		t.Fatalf("Unmarshal(empty) error: %v", err)
	}
}

func TestFullMethod(t *testing.T) {
	if got := FullMethod(MethodLogin); got != "/salon.v1.SalonService/Login" {
		t.Fatalf("FullMethod = %q", got)
	}
}
