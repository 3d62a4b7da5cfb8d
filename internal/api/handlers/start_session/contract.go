package start_session

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
)

type SessionManager interface {
	CreateSession(ctx context.Context) *draft.Store
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
