package update_details

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	updateDetails "github.com/m04kA/EL-BookingFlow/internal/usecase/update_details"
)

type UpdateDetailsUseCase interface {
	Execute(ctx context.Context, store updateDetails.DraftStore, req *updateDetails.Request) (*updateDetails.Response, error)
}

type SessionManager interface {
	GetSession(sessionID string) (*draft.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
