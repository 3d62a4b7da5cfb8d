package select_services

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// CatalogClient интерфейс клиента каталога услуг
type CatalogClient interface {
	GetServiceByType(ctx context.Context, serviceType string) (*barbershop.CatalogService, error)
}

// DraftStore интерфейс Draft Store сессии
type DraftStore interface {
	Patch(ctx context.Context, p domain.DraftPatch) domain.BookingDraft
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
