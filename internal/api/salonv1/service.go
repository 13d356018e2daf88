package salonv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "salon.v1.SalonService"

const (
	MethodRegister                 = "Register"
	MethodLogin                    = "Login"
	MethodBookAppointment          = "BookAppointment"
	MethodSetAppointmentStatus     = "SetAppointmentStatus"
	MethodListMyAppointments       = "ListMyAppointments"
	MethodListProviderAppointments = "ListProviderAppointments"
	MethodAvailableSlots           = "AvailableSlots"
	MethodCreateService            = "CreateService"
	MethodUpdateService            = "UpdateService"
	MethodDeleteService            = "DeleteService"
	MethodListMyServices           = "ListMyServices"
	MethodBrowseServices           = "BrowseServices"
	MethodListLocations            = "ListLocations"
	MethodListServiceNames         = "ListServiceNames"
)

// FullMethod returns the gRPC path of method, e.g. /salon.v1.SalonService/Login.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type SalonServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	BookAppointment(context.Context, *BookAppointmentRequest) (*AppointmentResponse, error)
	SetAppointmentStatus(context.Context, *SetAppointmentStatusRequest) (*AppointmentResponse, error)
	ListMyAppointments(context.Context, *ListMyAppointmentsRequest) (*ListAppointmentsResponse, error)
	ListProviderAppointments(context.Context, *ListProviderAppointmentsRequest) (*ListAppointmentsResponse, error)
	AvailableSlots(context.Context, *AvailableSlotsRequest) (*AvailableSlotsResponse, error)
	CreateService(context.Context, *CreateServiceRequest) (*ServiceResponse, error)
	UpdateService(context.Context, *UpdateServiceRequest) (*ServiceResponse, error)
	DeleteService(context.Context, *DeleteServiceRequest) (*DeleteServiceResponse, error)
	ListMyServices(context.Context, *ListMyServicesRequest) (*ListServicesResponse, error)
	BrowseServices(context.Context, *BrowseServicesRequest) (*ListServicesResponse, error)
	ListLocations(context.Context, *ListLocationsRequest) (*ListLocationsResponse, error)
	ListServiceNames(context.Context, *ListServiceNamesRequest) (*ListServiceNamesResponse, error)
}

func RegisterSalonServiceServer(s grpc.ServiceRegistrar, srv SalonServiceServer) {
	s.RegisterService(&SalonService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](method string, call func(SalonServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := FullMethod(method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SalonServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SalonServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var SalonService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SalonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodRegister, Handler: unary(MethodRegister, SalonServiceServer.Register)},
		{MethodName: MethodLogin, Handler: unary(MethodLogin, SalonServiceServer.Login)},
		{MethodName: MethodBookAppointment, Handler: unary(MethodBookAppointment, SalonServiceServer.BookAppointment)},
		{MethodName: MethodSetAppointmentStatus, Handler: unary(MethodSetAppointmentStatus, SalonServiceServer.SetAppointmentStatus)},
		{MethodName: MethodListMyAppointments, Handler: unary(MethodListMyAppointments, SalonServiceServer.ListMyAppointments)},
		{MethodName: MethodListProviderAppointments, Handler: unary(MethodListProviderAppointments, SalonServiceServer.ListProviderAppointments)},
		{MethodName: MethodAvailableSlots, Handler: unary(MethodAvailableSlots, SalonServiceServer.AvailableSlots)},
		{MethodName: MethodCreateService, Handler: unary(MethodCreateService, SalonServiceServer.CreateService)},
		{MethodName: MethodUpdateService, Handler: unary(MethodUpdateService, SalonServiceServer.UpdateService)},
		{MethodName: MethodDeleteService, Handler: unary(MethodDeleteService, SalonServiceServer.DeleteService)},
		{MethodName: MethodListMyServices, Handler: unary(MethodListMyServices, SalonServiceServer.ListMyServices)},
		{MethodName: MethodBrowseServices, Handler: unary(MethodBrowseServices, SalonServiceServer.BrowseServices)},
		{MethodName: MethodListLocations, Handler: unary(MethodListLocations, SalonServiceServer.ListLocations)},
		{MethodName: MethodListServiceNames, Handler: unary(MethodListServiceNames, SalonServiceServer.ListServiceNames)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "salon/v1/salon.proto",
}

// UnimplementedSalonServiceServer can be embedded to keep servers compiling
// when methods are added.
type UnimplementedSalonServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedSalonServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, unimplemented(MethodRegister)
}

func (UnimplementedSalonServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented(MethodLogin)
}

func (UnimplementedSalonServiceServer) BookAppointment(context.Context, *BookAppointmentRequest) (*AppointmentResponse, error) {
	return nil, unimplemented(MethodBookAppointment)
}

func (UnimplementedSalonServiceServer) SetAppointmentStatus(context.Context, *SetAppointmentStatusRequest) (*AppointmentResponse, error) {
	return nil, unimplemented(MethodSetAppointmentStatus)
}

func (UnimplementedSalonServiceServer) ListMyAppointments(context.Context, *ListMyAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, unimplemented(MethodListMyAppointments)
}

func (UnimplementedSalonServiceServer) ListProviderAppointments(context.Context, *ListProviderAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, unimplemented(MethodListProviderAppointments)
}

func (UnimplementedSalonServiceServer) AvailableSlots(context.Context, *AvailableSlotsRequest) (*AvailableSlotsResponse, error) {
	return nil, unimplemented(MethodAvailableSlots)
}

func (UnimplementedSalonServiceServer) CreateService(context.Context, *CreateServiceRequest) (*ServiceResponse, error) {
	return nil, unimplemented(MethodCreateService)
}

func (UnimplementedSalonServiceServer) UpdateService(context.Context, *UpdateServiceRequest) (*ServiceResponse, error) {
	return nil, unimplemented(MethodUpdateService)
}

func (UnimplementedSalonServiceServer) DeleteService(context.Context, *DeleteServiceRequest) (*DeleteServiceResponse, error) {
	return nil, unimplemented(MethodDeleteService)
}

func (UnimplementedSalonServiceServer) ListMyServices(context.Context, *ListMyServicesRequest) (*ListServicesResponse, error) {
	return nil, unimplemented(MethodListMyServices)
}

func (UnimplementedSalonServiceServer) BrowseServices(context.Context, *BrowseServicesRequest) (*ListServicesResponse, error) {
	return nil, unimplemented(MethodBrowseServices)
}

func (UnimplementedSalonServiceServer) ListLocations(context.Context, *ListLocationsRequest) (*ListLocationsResponse, error) {
	return nil, unimplemented(MethodListLocations)
}

func (UnimplementedSalonServiceServer) ListServiceNames(context.Context, *ListServiceNamesRequest) (*ListServiceNamesResponse, error) {
	return nil, unimplemented(MethodListServiceNames)
}
