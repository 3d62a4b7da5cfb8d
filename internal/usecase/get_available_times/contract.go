package get_available_times

import "context"

// BookedTimesClient интерфейс клиента занятых слотов
type BookedTimesClient interface {
	GetBookedTimes(ctx context.Context, date string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
