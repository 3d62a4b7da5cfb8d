package get_bookings

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/service/admin/models"
)

type AdminService interface {
	ListBookings(ctx context.Context, search string) ([]models.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
