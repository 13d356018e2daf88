package grpc

import (
	"salon/backend/internal/api/salonv1"
	"salon/backend/internal/domain"
)

func toAPIUser(u domain.User) *salonv1.User {
	return &salonv1.User{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     string(u.Role),
		Name:     u.Name,
		Phone:    u.Phone,
		Email:    u.Email,
		Location: u.Location,
	}
}

func toAPIAppointment(a domain.AppointmentDetail) *salonv1.Appointment {
	return &salonv1.Appointment{
		ID:           a.ID.String(),
		CustomerID:   a.CustomerID.String(),
		ProviderID:   a.ProviderID.String(),
		ServiceID:    a.ServiceID.String(),
		Date:         a.Date.String(),
		StartTime:    a.Start.String(),
		EndTime:      a.End.String(),
		Status:       string(a.Status),
		ServiceName:  a.ServiceName,
		CustomerName: a.CustomerName,
		ProviderName: a.ProviderName,
		CreatedAt:    a.CreatedAt,
	}
}

func toAPIAppointments(rows []domain.AppointmentDetail) []*salonv1.Appointment {
	out := make([]*salonv1.Appointment, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAPIAppointment(r))
	}
	return out
}

func toAPIService(s domain.Service) *salonv1.Service {
	return &salonv1.Service{
		ID:              s.ID.String(),
		ProviderID:      s.ProviderID.String(),
		Name:            s.Name,
		Description:     s.Description,
		PriceCents:      s.PriceCents,
		DurationMinutes: s.DurationMinutes,
	}
}

func toAPIListing(l domain.ServiceListing) *salonv1.Service {
	out := toAPIService(l.Service)
	out.ProviderUsername = l.ProviderUsername
	out.ProviderLocation = l.ProviderLocation
	return out
}
