package enrichment

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// BarberClient интерфейс клиента удаленного API, используемый enrichment'ом
type BarberClient interface {
	GetStaffName(ctx context.Context, staffID string) (string, error)
	GetQueuePositions(ctx context.Context, services []barbershop.SubmittedService) ([]domain.QueuePosition, error)
}

// Cache интерфейс best-effort кеша позиций в очереди
type Cache interface {
	GetQueuePosition(ctx context.Context, serviceName string) (domain.QueuePosition, error)
	SetQueuePosition(ctx context.Context, serviceName string, pos domain.QueuePosition) error
}

// DraftStore интерфейс Draft Store, используемый enrichment'ом
// Resolve*-операции аддитивны: мерж по полям, конкурентные вызовы безопасны
type DraftStore interface {
	Get() domain.BookingDraft
	ResolveStaffName(staffID, staffName string)
	ResolveQueuePosition(serviceName string, pos domain.QueuePosition)
}

// LookupMetrics интерфейс метрики неудачных lookup'ов (может быть nil)
type LookupMetrics interface {
	IncEnrichmentLookupError()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
