package submit_booking

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	submitBooking "github.com/m04kA/EL-BookingFlow/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, store submitBooking.DraftStore) (*submitBooking.Response, error)
}

type SessionManager interface {
	GetSession(sessionID string) (*draft.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
