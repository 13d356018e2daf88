package scheduling

import (
	"context"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
)

// AppointmentFinder loads a provider's appointments for one day.
type AppointmentFinder interface {
	FindAppointmentsForProviderOnDate(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error)
}

// Overlaps reports whether two half-open slots share at least one minute.
// Back-to-back slots (a.End == b.Start) do not overlap.
func Overlaps(a, b domain.Slot) bool {
	return a.Start < b.End && b.Start < a.End
}

// Blocking reports whether an appointment still occupies its slot.
func Blocking(a domain.Appointment) bool {
	return a.Status != domain.StatusCancelled
}

// ConflictsWith returns the first blocking appointment overlapping proposed.
func ConflictsWith(existing []domain.Appointment, proposed domain.Slot) (domain.Appointment, bool) {
	for _, a := range existing {
		if !Blocking(a) {
			continue
		}
		if Overlaps(a.Slot(), proposed) {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

// HasConflict loads the provider's appointments on date and reports whether
// any blocking one overlaps proposed. It never writes.
func HasConflict(ctx context.Context, finder AppointmentFinder, providerID uuid.UUID, date domain.Date, proposed domain.Slot) (bool, error) {
	existing, err := finder.FindAppointmentsForProviderOnDate(ctx, providerID, date)
	if err != nil {
		return false, err
	}
	_, conflict := ConflictsWith(existing, proposed)
	return conflict, nil
}
