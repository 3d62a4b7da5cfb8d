package get_billing_summary

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/service/enrichment"
)

// DraftStore интерфейс Draft Store сессии
// Набор методов покрывает enrichment.DraftStore: store пробрасывается
// в координатор без адаптеров
type DraftStore interface {
	Get() domain.BookingDraft
	ResolveStaffName(staffID, staffName string)
	ResolveQueuePosition(serviceName string, pos domain.QueuePosition)
}

// Enricher интерфейс координатора enrichment'а
type Enricher interface {
	Enrich(ctx context.Context, store enrichment.DraftStore) []string
	RefreshQueuePositions(ctx context.Context, store enrichment.DraftStore) []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
