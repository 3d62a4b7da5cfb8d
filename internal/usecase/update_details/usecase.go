package update_details

import (
	"context"
	"fmt"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/pkg/ptr"
)

// UseCase use case обновления данных клиента и расписания
// Простой проброс патча в Draft Store с нормализацией даты и валидацией
// способа оплаты; полнота полей проверяется гейтами шагов, не здесь
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		logger: logger,
	}
}

// Execute применяет частичное обновление к черновику сессии
func (uc *UseCase) Execute(ctx context.Context, store DraftStore, req *Request) (*Response, error) {
	patch := domain.DraftPatch{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ContactNumber: req.ContactNumber,
	}

	// Дата нормализуется на входе: в черновике всегда YYYY-MM-DD
	if req.Date != nil {
		date, err := domain.NormalizeDate(*req.Date)
		if err != nil {
			uc.logger.Warn("UpdateDetails: invalid date %q: %v", *req.Date, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		patch.Date = ptr.Ptr(date)
	}

	if req.PaymentMethod != nil {
		method, err := domain.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			uc.logger.Warn("UpdateDetails: invalid payment method %q", *req.PaymentMethod)
			return nil, fmt.Errorf("%w: %v", ErrInvalidPaymentMethod, err)
		}
		patch.PaymentMethod = ptr.Ptr(method)
	}

	updated := store.Patch(ctx, patch)

	uc.logger.Info("UpdateDetails: draft patched")
	return &Response{Draft: updated}, nil
}
