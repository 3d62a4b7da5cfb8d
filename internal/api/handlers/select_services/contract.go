package select_services

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	selectServices "github.com/m04kA/EL-BookingFlow/internal/usecase/select_services"
)

type SelectServicesUseCase interface {
	Execute(ctx context.Context, store selectServices.DraftStore, req *selectServices.Request) (*selectServices.Response, error)
}

type SessionManager interface {
	GetSession(sessionID string) (*draft.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
