package submit_booking

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// SubmitClient интерфейс удаленного API для отправки бронирования
type SubmitClient interface {
	SubmitBooking(ctx context.Context, submission *barbershop.BookingSubmission) error
}

// DraftStore интерфейс Draft Store сессии
type DraftStore interface {
	Get() domain.BookingDraft
	TryBeginSubmit() error
	FinishSubmit(success bool, total float64)
}

// ReceiptFormatter интерфейс генератора квитанции
type ReceiptFormatter interface {
	Render(draft domain.BookingDraft, total float64) string
}

// SubmissionMetrics интерфейс метрик конвейера отправки
type SubmissionMetrics interface {
	IncSubmission(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
