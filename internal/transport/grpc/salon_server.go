package grpc

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salon/backend/internal/api/salonv1"
	"salon/backend/internal/auth"
	"salon/backend/internal/domain"
	"salon/backend/internal/service/accounts"
	"salon/backend/internal/service/appointments"
	"salon/backend/internal/service/catalog"
)

type SalonServer struct {
	salonv1.UnimplementedSalonServiceServer

	booking  bookingService
	catalog  catalogService
	accounts accountService
	log      *slog.Logger
}

type bookingService interface {
	Book(ctx context.Context, sess domain.Session, in appointments.BookInput) (domain.Appointment, error)
	SetStatus(ctx context.Context, sess domain.Session, appointmentID uuid.UUID, status domain.AppointmentStatus) (domain.Appointment, error)
	ListForCustomer(ctx context.Context, sess domain.Session) ([]domain.AppointmentDetail, error)
	ListForProvider(ctx context.Context, sess domain.Session) ([]domain.AppointmentDetail, error)
	AvailableSlots(ctx context.Context, serviceID uuid.UUID, date domain.Date) ([]domain.TimeOfDay, error)
}

type catalogService interface {
	CreateService(ctx context.Context, sess domain.Session, in catalog.ServiceInput) (domain.Service, error)
	UpdateService(ctx context.Context, sess domain.Session, serviceID uuid.UUID, in catalog.ServiceInput) (domain.Service, error)
	DeleteService(ctx context.Context, sess domain.Session, serviceID uuid.UUID) error
	ListProviderServices(ctx context.Context, sess domain.Session) ([]domain.Service, error)
	BrowseServices(ctx context.Context, filter catalog.BrowseFilter) ([]domain.ServiceListing, error)
	Locations(ctx context.Context) ([]string, error)
	ServiceNames(ctx context.Context) ([]string, error)
}

type accountService interface {
	Register(ctx context.Context, in accounts.RegisterInput) (domain.User, error)
	Login(ctx context.Context, username, password string, role domain.Role) (accounts.LoginResult, error)
}

func NewSalonServer(booking bookingService, catalog catalogService, accounts accountService, log *slog.Logger) *SalonServer {
	if log == nil {
		log = slog.Default()
	}
	return &SalonServer{
		booking:  booking,
		catalog:  catalog,
		accounts: accounts,
		log:      log.With(slog.String("component", "grpc.salon")),
	}
}

func sessionFrom(ctx context.Context) domain.Session {
	sess, _ := auth.SessionFromContext(ctx)
	return sess
}

func nilRequest(log *slog.Logger) error {
	log.Warn("invalid request", slog.String("reason", "nil_request"))
	return status.Error(codes.InvalidArgument, "request is required")
}

func (s *SalonServer) Register(ctx context.Context, req *salonv1.RegisterRequest) (*salonv1.RegisterResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodRegister))
	if req == nil {
		return nil, nilRequest(log)
	}

	u, err := s.accounts.Register(ctx, accounts.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		return nil, fail(log, "registration failed", err, slog.String("username", req.Username))
	}

	log.Info("user registered", slog.String("user_id", u.ID.String()), slog.String("role", string(u.Role)))
	return &salonv1.RegisterResponse{User: toAPIUser(u)}, nil
}

func (s *SalonServer) Login(ctx context.Context, req *salonv1.LoginRequest) (*salonv1.LoginResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodLogin))
	if req == nil {
		return nil, nilRequest(log)
	}

	res, err := s.accounts.Login(ctx, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return nil, fail(log, "login failed", err, slog.String("username", req.Username))
	}

	log.Info("user logged in", slog.String("user_id", res.User.ID.String()))
	return &salonv1.LoginResponse{User: toAPIUser(res.User), Token: res.Token, ExpiresAt: res.ExpiresAt}, nil
}

func (s *SalonServer) BookAppointment(ctx context.Context, req *salonv1.BookAppointmentRequest) (*salonv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodBookAppointment))
	if req == nil {
		return nil, nilRequest(log)
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, invalid(log, "invalid_uuid", "service_id must be a UUID")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fail(log, "appointment booking failed", appointments.ErrInvalidDate, slog.String("date", req.Date))
	}

	sess := sessionFrom(ctx)
	appt, err := s.booking.Book(ctx, sess, appointments.BookInput{
		ServiceID: serviceID,
		Date:      date,
		StartTime: req.StartTime,
	})
	if err != nil {
		return nil, fail(log, "appointment booking failed", err,
			slog.String("service_id", serviceID.String()),
			slog.String("customer_id", sess.UserID.String()),
			slog.String("date", req.Date),
			slog.String("start_time", req.StartTime),
		)
	}

	log.Info(
		"appointment booked",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("customer_id", appt.CustomerID.String()),
		slog.String("provider_id", appt.ProviderID.String()),
		slog.String("slot", appt.Slot().String()),
	)
	return &salonv1.AppointmentResponse{Appointment: toAPIAppointment(domain.AppointmentDetail{Appointment: appt})}, nil
}

func (s *SalonServer) SetAppointmentStatus(ctx context.Context, req *salonv1.SetAppointmentStatusRequest) (*salonv1.AppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodSetAppointmentStatus))
	if req == nil {
		return nil, nilRequest(log)
	}
	id, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, invalid(log, "invalid_uuid", "appointment_id must be a UUID")
	}

	sess := sessionFrom(ctx)
	appt, err := s.booking.SetStatus(ctx, sess, id, domain.AppointmentStatus(req.Status))
	if err != nil {
		return nil, fail(log, "appointment status change failed", err,
			slog.String("appointment_id", id.String()),
			slog.String("user_id", sess.UserID.String()),
			slog.String("status", req.Status),
		)
	}

	log.Info("appointment status set", slog.String("appointment_id", appt.ID.String()), slog.String("status", string(appt.Status)))
	return &salonv1.AppointmentResponse{Appointment: toAPIAppointment(domain.AppointmentDetail{Appointment: appt})}, nil
}

func (s *SalonServer) ListMyAppointments(ctx context.Context, req *salonv1.ListMyAppointmentsRequest) (*salonv1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodListMyAppointments))

	sess := sessionFrom(ctx)
	rows, err := s.booking.ListForCustomer(ctx, sess)
	if err != nil {
		return nil, fail(log, "appointments list failed", err, slog.String("user_id", sess.UserID.String()))
	}

	log.Debug("appointments listed", slog.String("user_id", sess.UserID.String()), slog.Int("count", len(rows)))
	return &salonv1.ListAppointmentsResponse{Appointments: toAPIAppointments(rows)}, nil
}

func (s *SalonServer) ListProviderAppointments(ctx context.Context, req *salonv1.ListProviderAppointmentsRequest) (*salonv1.ListAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodListProviderAppointments))

	sess := sessionFrom(ctx)
	rows, err := s.booking.ListForProvider(ctx, sess)
	if err != nil {
		return nil, fail(log, "appointments list failed", err, slog.String("user_id", sess.UserID.String()))
	}

	log.Debug("appointments listed", slog.String("user_id", sess.UserID.String()), slog.Int("count", len(rows)))
	return &salonv1.ListAppointmentsResponse{Appointments: toAPIAppointments(rows)}, nil
}

func (s *SalonServer) AvailableSlots(ctx context.Context, req *salonv1.AvailableSlotsRequest) (*salonv1.AvailableSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodAvailableSlots))
	if req == nil {
		return nil, nilRequest(log)
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, invalid(log, "invalid_uuid", "service_id must be a UUID")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fail(log, "available slots failed", appointments.ErrInvalidDate, slog.String("date", req.Date))
	}

	starts, err := s.booking.AvailableSlots(ctx, serviceID, date)
	if err != nil {
		return nil, fail(log, "available slots failed", err, slog.String("service_id", serviceID.String()), slog.String("date", req.Date))
	}

	out := make([]string, 0, len(starts))
	for _, t := range starts {
		out = append(out, t.String())
	}
	return &salonv1.AvailableSlotsResponse{StartTimes: out}, nil
}

func (s *SalonServer) CreateService(ctx context.Context, req *salonv1.CreateServiceRequest) (*salonv1.ServiceResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodCreateService))
	if req == nil {
		return nil, nilRequest(log)
	}

	sess := sessionFrom(ctx)
	svc, err := s.catalog.CreateService(ctx, sess, catalog.ServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return nil, fail(log, "service create failed", err, slog.String("user_id", sess.UserID.String()))
	}

	log.Info("service created", slog.String("service_id", svc.ID.String()), slog.String("provider_id", svc.ProviderID.String()))
	return &salonv1.ServiceResponse{Service: toAPIService(svc)}, nil
}

func (s *SalonServer) UpdateService(ctx context.Context, req *salonv1.UpdateServiceRequest) (*salonv1.ServiceResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodUpdateService))
	if req == nil {
		return nil, nilRequest(log)
	}
	id, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, invalid(log, "invalid_uuid", "service_id must be a UUID")
	}

	sess := sessionFrom(ctx)
	svc, err := s.catalog.UpdateService(ctx, sess, id, catalog.ServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return nil, fail(log, "service update failed", err, slog.String("service_id", id.String()), slog.String("user_id", sess.UserID.String()))
	}

	log.Info("service updated", slog.String("service_id", svc.ID.String()))
	return &salonv1.ServiceResponse{Service: toAPIService(svc)}, nil
}

func (s *SalonServer) DeleteService(ctx context.Context, req *salonv1.DeleteServiceRequest) (*salonv1.DeleteServiceResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodDeleteService))
	if req == nil {
		return nil, nilRequest(log)
	}
	id, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, invalid(log, "invalid_uuid", "service_id must be a UUID")
	}

	sess := sessionFrom(ctx)
	if err := s.catalog.DeleteService(ctx, sess, id); err != nil {
		return nil, fail(log, "service delete failed", err, slog.String("service_id", id.String()), slog.String("user_id", sess.UserID.String()))
	}

	log.Info("service deleted", slog.String("service_id", id.String()))
	return &salonv1.DeleteServiceResponse{}, nil
}

func (s *SalonServer) ListMyServices(ctx context.Context, req *salonv1.ListMyServicesRequest) (*salonv1.ListServicesResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodListMyServices))

	sess := sessionFrom(ctx)
	rows, err := s.catalog.ListProviderServices(ctx, sess)
	if err != nil {
		return nil, fail(log, "services list failed", err, slog.String("user_id", sess.UserID.String()))
	}

	out := make([]*salonv1.Service, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAPIService(r))
	}
	return &salonv1.ListServicesResponse{Services: out}, nil
}

func (s *SalonServer) BrowseServices(ctx context.Context, req *salonv1.BrowseServicesRequest) (*salonv1.ListServicesResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodBrowseServices))
	if req == nil {
		req = &salonv1.BrowseServicesRequest{}
	}

	rows, err := s.catalog.BrowseServices(ctx, catalog.BrowseFilter{Location: req.Location, Name: req.Name})
	if err != nil {
		return nil, fail(log, "services browse failed", err)
	}

	out := make([]*salonv1.Service, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAPIListing(r))
	}
	log.Debug("services browsed", slog.String("location", req.Location), slog.String("name", req.Name), slog.Int("count", len(out)))
	return &salonv1.ListServicesResponse{Services: out}, nil
}

func (s *SalonServer) ListLocations(ctx context.Context, req *salonv1.ListLocationsRequest) (*salonv1.ListLocationsResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodListLocations))

	locations, err := s.catalog.Locations(ctx)
	if err != nil {
		return nil, fail(log, "locations list failed", err)
	}
	return &salonv1.ListLocationsResponse{Locations: locations}, nil
}

func (s *SalonServer) ListServiceNames(ctx context.Context, req *salonv1.ListServiceNamesRequest) (*salonv1.ListServiceNamesResponse, error) {
	log := s.log.With(slog.String("rpc", salonv1.MethodListServiceNames))

	names, err := s.catalog.ServiceNames(ctx)
	if err != nil {
		return nil, fail(log, "service names list failed", err)
	}
	return &salonv1.ListServiceNamesResponse{Names: names}, nil
}
