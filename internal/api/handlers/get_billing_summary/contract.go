package get_billing_summary

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	getBillingSummary "github.com/m04kA/EL-BookingFlow/internal/usecase/get_billing_summary"
)

type GetBillingSummaryUseCase interface {
	Execute(ctx context.Context, store getBillingSummary.DraftStore) (*getBillingSummary.Response, error)
}

type SessionManager interface {
	GetSession(sessionID string) (*draft.Store, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
