package select_time_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/pkg/ptr"
)

// UseCase use case выбора временного слота
// Проверяет доступность у удаленного API прежде, чем записать время
// в черновик: отклоненный слот черновик не меняет
type UseCase struct {
	client AvailabilityClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AvailabilityClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case выбора слота
func (uc *UseCase) Execute(ctx context.Context, store DraftStore, req *Request) (*Response, error) {
	draft := store.Get()

	// 1. Дата должна быть выбрана раньше времени
	if draft.Date == "" {
		uc.logger.Warn("SelectTimeSlot: no date selected yet")
		return nil, ErrNoDateSelected
	}

	// 2. Label должен входить в фиксированный набор слотов
	if !domain.IsKnownSlotLabel(req.TimeLabel) {
		uc.logger.Warn("SelectTimeSlot: unknown time label %q", req.TimeLabel)
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeSlot, req.TimeLabel)
	}

	// 3. Нормализуем дату и время через общие функции нормализации -
	// те же, что использует отправка бронирования
	date, err := domain.NormalizeDate(draft.Date)
	if err != nil {
		uc.logger.Error("SelectTimeSlot: draft holds invalid date %q: %v", draft.Date, err)
		return nil, fmt.Errorf("%w: invalid draft date: %v", ErrInternal, err)
	}

	slotTime, err := domain.NormalizeSlotTime(req.TimeLabel)
	if err != nil {
		uc.logger.Error("SelectTimeSlot: failed to normalize label %q: %v", req.TimeLabel, err)
		return nil, fmt.Errorf("%w: failed to normalize time label: %v", ErrInternal, err)
	}

	uc.logger.Info("SelectTimeSlot: checking date=%s time=%s (label=%q)", date, slotTime, req.TimeLabel)

	// 4. Проверяем доступность
	result, err := uc.client.CheckAvailability(ctx, date, slotTime)
	if err != nil {
		uc.logger.Error("SelectTimeSlot: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	// 5. Занятый слот не трогает черновик: прежний выбор остается,
	// пользователь выбирает другой слот
	if !result.Available() {
		uc.logger.Warn("SelectTimeSlot: slot date=%s time=%s rejected: %s", date, slotTime, result.Message)
		if result.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrSlotTaken, result.Message)
		}
		return nil, ErrSlotTaken
	}

	// 6. Записываем принятый слот в черновик
	store.Patch(ctx, domain.DraftPatch{Time: ptr.Ptr(req.TimeLabel)})

	uc.logger.Info("SelectTimeSlot: accepted date=%s time=%q", date, req.TimeLabel)
	return &Response{
		Date: date,
		Time: req.TimeLabel,
	}, nil
}
