package get_available_times

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	getAvailableTimes "github.com/m04kA/EL-BookingFlow/internal/usecase/get_available_times"
)

type GetAvailableTimesUseCase interface {
	Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error)
}

type SessionManager interface {
	GetSession(sessionID string) (*draft.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
