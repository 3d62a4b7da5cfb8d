package submit_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// Результаты отправки для метрик
const (
	resultSuccess  = "success"
	resultFailure  = "failure"
	resultRejected = "rejected"
)

// UseCase use case отправки бронирования
// Конвейер idle -> submitting -> succeeded; неуспех возвращает в idle,
// черновик при этом не изменяется
type UseCase struct {
	client    SubmitClient
	formatter ReceiptFormatter
	metrics   SubmissionMetrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(client SubmitClient, formatter ReceiptFormatter, metrics SubmissionMetrics, logger Logger) *UseCase {
	return &UseCase{
		client:    client,
		formatter: formatter,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute отправляет бронирование в удаленный API
func (uc *UseCase) Execute(ctx context.Context, store DraftStore) (*Response, error) {
	// 1. Валидация полноты черновика в фиксированном порядке
	draft := store.Get()
	if err := validateDraft(draft); err != nil {
		uc.logger.Warn("SubmitBooking: draft validation failed: %v", err)
		uc.incSubmission(resultRejected)
		return nil, err
	}

	// 2. Захват busy-флага: одновременно допустима ровно одна отправка
	if err := store.TryBeginSubmit(); err != nil {
		uc.logger.Warn("SubmitBooking: submit refused: %v", err)
		uc.incSubmission(resultRejected)
		return nil, err
	}

	// 3. Сборка payload: дата и время проходят через те же нормализаторы,
	// что и проверка доступности слота
	submission, total, err := uc.buildSubmission(draft)
	if err != nil {
		store.FinishSubmit(false, 0)
		uc.logger.Error("SubmitBooking: failed to build submission: %v", err)
		uc.incSubmission(resultFailure)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Отправка бронирования
	if err := uc.client.SubmitBooking(ctx, submission); err != nil {
		store.FinishSubmit(false, 0)
		uc.logger.Error("SubmitBooking: remote API rejected booking: %v", err)
		uc.incSubmission(resultFailure)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	// 5. Фиксация успеха и генерация квитанции
	store.FinishSubmit(true, total)
	final := store.Get()
	receipt := uc.formatter.Render(final, total)

	uc.logger.Info("SubmitBooking: booking submitted, services = %d, total = %.2f", len(final.Services), total)
	uc.incSubmission(resultSuccess)
	return &Response{
		Draft:   final,
		Total:   total,
		Receipt: receipt,
	}, nil
}

func (uc *UseCase) incSubmission(result string) {
	if uc.metrics != nil {
		uc.metrics.IncSubmission(result)
	}
}

func (uc *UseCase) buildSubmission(draft domain.BookingDraft) (*barbershop.BookingSubmission, float64, error) {
	date, err := domain.NormalizeDate(draft.Date)
	if err != nil {
		return nil, 0, fmt.Errorf("normalize date %q: %w", draft.Date, err)
	}
	slot, err := domain.NormalizeSlotTime(draft.Time)
	if err != nil {
		return nil, 0, fmt.Errorf("normalize time %q: %w", draft.Time, err)
	}

	services := make([]barbershop.SubmittedService, 0, len(draft.Services))
	for _, svc := range draft.Services {
		services = append(services, barbershop.SubmittedService{
			ServiceID:     svc.ServiceID,
			StaffID:       svc.StaffID,
			ServiceName:   svc.ServiceName,
			ServicePrice:  svc.ServicePrice,
			QueuePosition: svc.QueuePosition,
		})
	}

	total := domain.ComputeTotal(draft.Services)

	return &barbershop.BookingSubmission{
		Name:          draft.CustomerName,
		Email:         draft.CustomerEmail,
		ContactNo:     draft.ContactNumber,
		Services:      services,
		Date:          date,
		Time:          slot.String(),
		PaymentMethod: string(draft.PaymentMethod),
		TotalPrice:    total,
	}, total, nil
}
