package draft

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// Cache интерфейс best-effort кеша
// Кеш никогда не авторитетен: in-memory черновик главнее, любая ошибка
// кеша логируется и не блокирует операцию
type Cache interface {
	GetContactDetails(ctx context.Context) (contactNo string, payment domain.PaymentMethod, err error)
	SetContactDetails(ctx context.Context, contactNo string, payment domain.PaymentMethod) error
}

// SessionGauge интерфейс метрики количества живых сессий
// prometheus.Gauge удовлетворяет этому интерфейсу
type SessionGauge interface {
	Inc()
	Dec()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
