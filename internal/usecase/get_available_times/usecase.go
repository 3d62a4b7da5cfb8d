package get_available_times

import (
	"context"
	"fmt"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// UseCase use case получения свободных слотов на дату
// Свободные слоты = фиксированный набор слотов дня минус занятые
// по данным удаленного API
type UseCase struct {
	client BookedTimesClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookedTimesClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализуем дату
	date, err := domain.NormalizeDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableTimes: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	uc.logger.Info("GetAvailableTimes: date=%s", date)

	// 2. Получаем занятые слоты
	bookedTimes, err := uc.client.GetBookedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get booked times for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	// 3. Фильтруем фиксированный набор слотов, сохраняя порядок дня
	available := make([]string, 0, len(domain.SlotLabels))
	for _, label := range domain.SlotLabels {
		if !booked[label] {
			available = append(available, label)
		}
	}

	uc.logger.Info("GetAvailableTimes: date=%s, %d of %d slots available",
		date, len(available), len(domain.SlotLabels))

	return &Response{
		Date:  date,
		Times: available,
	}, nil
}
