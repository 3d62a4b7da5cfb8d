package admin

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// BarberClient интерфейс клиента удаленного API для административных операций
type BarberClient interface {
	ListBookings(ctx context.Context) ([]barbershop.BookingRecord, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	ListPayments(ctx context.Context) ([]barbershop.PaymentRecord, error)
	AcceptPayment(ctx context.Context, bookingID string) error
	CancelPayment(ctx context.Context, bookingID string) error
	DeletePayment(ctx context.Context, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
