package select_time_slot

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	"github.com/m04kA/EL-BookingFlow/pkg/types"
)

// AvailabilityClient интерфейс клиента проверки доступности слота
type AvailabilityClient interface {
	CheckAvailability(ctx context.Context, date string, t types.TimeString) (*barbershop.AvailabilityResult, error)
}

// DraftStore интерфейс Draft Store сессии
type DraftStore interface {
	Get() domain.BookingDraft
	Patch(ctx context.Context, p domain.DraftPatch) domain.BookingDraft
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
