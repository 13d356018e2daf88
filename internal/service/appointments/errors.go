package appointments

import (
	"errors"
	"fmt"

	"salon/backend/internal/store"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidTimeFormat   = errors.New("invalid time format, expected HH:MM")
	ErrInvalidDate         = errors.New("invalid date")
	ErrSlotUnavailable     = errors.New("time slot not available")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
)

var taxonomy = []error{
	ErrServiceNotFound,
	ErrInvalidTimeFormat,
	ErrInvalidDate,
	ErrSlotUnavailable,
	ErrAppointmentNotFound,
	ErrNotAuthorized,
	ErrStoreUnavailable,
	ErrInvalidStatus,
	ErrInvalidTransition,
}

// storeError translates an error returned from inside a store call or
// transaction. notFound is what store.ErrNotFound means to the caller.
func storeError(err, notFound error) error {
	for _, known := range taxonomy {
		if errors.Is(err, known) {
			return err
		}
	}
	switch {
	case errors.Is(err, store.ErrConflict):
		return ErrSlotUnavailable
	case notFound != nil && errors.Is(err, store.ErrNotFound):
		return notFound
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
