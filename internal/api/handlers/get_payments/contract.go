package get_payments

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/admin/models"
)

type AdminService interface {
	ListPayments(ctx context.Context, search string) ([]models.PaymentView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
