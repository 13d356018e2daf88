package salonv1

import (
	"context"

	"google.golang.org/grpc"
)

// SalonServiceClient calls the salon API using the JSON codec.
type SalonServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSalonServiceClient(cc grpc.ClientConnInterface) *SalonServiceClient {
	return &SalonServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SalonServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *SalonServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *SalonServiceClient) BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, MethodBookAppointment, in, opts)
}

func (c *SalonServiceClient) SetAppointmentStatus(ctx context.Context, in *SetAppointmentStatusRequest, opts ...grpc.CallOption) (*AppointmentResponse, error) {
	return invoke[AppointmentResponse](ctx, c.cc, MethodSetAppointmentStatus, in, opts)
}

func (c *SalonServiceClient) ListMyAppointments(ctx context.Context, in *ListMyAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, MethodListMyAppointments, in, opts)
}

func (c *SalonServiceClient) ListProviderAppointments(ctx context.Context, in *ListProviderAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, MethodListProviderAppointments, in, opts)
}

func (c *SalonServiceClient) AvailableSlots(ctx context.Context, in *AvailableSlotsRequest, opts ...grpc.CallOption) (*AvailableSlotsResponse, error) {
	return invoke[AvailableSlotsResponse](ctx, c.cc, MethodAvailableSlots, in, opts)
}

func (c *SalonServiceClient) CreateService(ctx context.Context, in *CreateServiceRequest, opts ...grpc.CallOption) (*ServiceResponse, error) {
	return invoke[ServiceResponse](ctx, c.cc, MethodCreateService, in, opts)
}

func (c *SalonServiceClient) UpdateService(ctx context.Context, in *UpdateServiceRequest, opts ...grpc.CallOption) (*ServiceResponse, error) {
	return invoke[ServiceResponse](ctx, c.cc, MethodUpdateService, in, opts)
}

func (c *SalonServiceClient) DeleteService(ctx context.Context, in *DeleteServiceRequest, opts ...grpc.CallOption) (*DeleteServiceResponse, error) {
	return invoke[DeleteServiceResponse](ctx, c.cc, MethodDeleteService, in, opts)
}

func (c *SalonServiceClient) ListMyServices(ctx context.Context, in *ListMyServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	return invoke[ListServicesResponse](ctx, c.cc, MethodListMyServices, in, opts)
}

func (c *SalonServiceClient) BrowseServices(ctx context.Context, in *BrowseServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	return invoke[ListServicesResponse](ctx, c.cc, MethodBrowseServices, in, opts)
}

func (c *SalonServiceClient) ListLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*ListLocationsResponse, error) {
	return invoke[ListLocationsResponse](ctx, c.cc, MethodListLocations, in, opts)
}

func (c *SalonServiceClient) ListServiceNames(ctx context.Context, in *ListServiceNamesRequest, opts ...grpc.CallOption) (*ListServiceNamesResponse, error) {
	return invoke[ListServiceNamesResponse](ctx, c.cc, MethodListServiceNames, in, opts)
}
