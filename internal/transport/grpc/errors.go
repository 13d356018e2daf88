package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salon/backend/internal/service"
	"salon/backend/internal/service/accounts"
	"salon/backend/internal/service/appointments"
	"salon/backend/internal/service/catalog"
)

func codeFor(err error) codes.Code {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, appointments.ErrInvalidTimeFormat),
		errors.Is(err, appointments.ErrInvalidDate),
		errors.Is(err, appointments.ErrInvalidStatus):
		return codes.InvalidArgument
	case errors.Is(err, appointments.ErrServiceNotFound),
		errors.Is(err, appointments.ErrAppointmentNotFound),
		errors.Is(err, catalog.ErrServiceNotFound):
		return codes.NotFound
	case errors.Is(err, appointments.ErrNotAuthorized),
		errors.Is(err, catalog.ErrNotAuthorized):
		return codes.PermissionDenied
	case errors.Is(err, appointments.ErrSlotUnavailable),
		errors.Is(err, appointments.ErrInvalidTransition):
		return codes.FailedPrecondition
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return codes.Unauthenticated
	case errors.Is(err, accounts.ErrUsernameTaken):
		return codes.AlreadyExists
	case errors.Is(err, appointments.ErrStoreUnavailable),
		errors.Is(err, catalog.ErrStoreUnavailable),
		errors.Is(err, accounts.ErrStoreUnavailable):
		return codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// fail logs err at a level matching its code and converts it to a status.
// Internal details never reach the caller.
func fail(log *slog.Logger, msg string, err error, attrs ...any) error {
	code := codeFor(err)
	args := append([]any{slog.Any("err", err), slog.String("code", code.String())}, attrs...)

	switch code {
	case codes.Internal:
		log.Error(msg, args...)
		return status.Error(code, "internal error")
	case codes.Unavailable:
		log.Error(msg, args...)
		return status.Error(code, "service temporarily unavailable, try again")
	case codes.DeadlineExceeded, codes.Canceled:
		log.Warn(msg, args...)
		return status.Error(code, err.Error())
	case codes.InvalidArgument:
		log.Warn("invalid request", args...)
		return status.Error(code, err.Error())
	default:
		log.Info(msg, args...)
		return status.Error(code, err.Error())
	}
}

func invalid(log *slog.Logger, reason, msg string, attrs ...any) error {
	args := append([]any{slog.String("reason", reason)}, attrs...)
	log.Warn("invalid request", args...)
	return status.Error(codes.InvalidArgument, msg)
}
