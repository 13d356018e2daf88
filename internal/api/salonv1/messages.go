package salonv1

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
}

// Appointment times are HH:MM and dates YYYY-MM-DD.
type Appointment struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	ProviderID   string    `json:"provider_id"`
	ServiceID    string    `json:"service_id"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	ServiceName  string    `json:"service_name,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	ProviderName string    `json:"provider_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Service struct {
	ID               string `json:"id"`
	ProviderID       string `json:"provider_id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	PriceCents       int64  `json:"price_cents"`
	DurationMinutes  int    `json:"duration_minutes"`
	ProviderUsername string `json:"provider_username,omitempty"`
	ProviderLocation string `json:"provider_location,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
}

type RegisterResponse struct {
	User *User `json:"user"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type BookAppointmentRequest struct {
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

type SetAppointmentStatusRequest struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type AppointmentResponse struct {
	Appointment *Appointment `json:"appointment"`
}

type ListMyAppointmentsRequest struct{}

type ListProviderAppointmentsRequest struct{}

type ListAppointmentsResponse struct {
	Appointments []*Appointment `json:"appointments"`
}

type AvailableSlotsRequest struct {
	ServiceID string `json:"service_id"`
	Date      string `json:"date"`
}

type AvailableSlotsResponse struct {
	StartTimes []string `json:"start_times"`
}

type CreateServiceRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

type UpdateServiceRequest struct {
	ServiceID       string `json:"service_id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

type ServiceResponse struct {
	Service *Service `json:"service"`
}

type DeleteServiceRequest struct {
	ServiceID string `json:"service_id"`
}

type DeleteServiceResponse struct{}

type ListMyServicesRequest struct{}

type BrowseServicesRequest struct {
	Location string `json:"location,omitempty"`
	Name     string `json:"name,omitempty"`
}

type ListServicesResponse struct {
	Services []*Service `json:"services"`
}

type ListLocationsRequest struct{}

type ListLocationsResponse struct {
	Locations []string `json:"locations"`
}

type ListServiceNamesRequest struct{}

type ListServiceNamesResponse struct {
	Names []string `json:"names"`
}
