package select_time_slot

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	selectTimeSlot "github.com/m04kA/EL-BookingFlow/internal/usecase/select_time_slot"
)

type SelectTimeSlotUseCase interface {
	Execute(ctx context.Context, store selectTimeSlot.DraftStore, req *selectTimeSlot.Request) (*selectTimeSlot.Response, error)
}

type SessionManager interface {
	GetSession(sessionID string) (*draft.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
