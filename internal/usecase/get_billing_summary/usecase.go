package get_billing_summary

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// UseCase use case сводки биллинга
type UseCase struct {
	enricher Enricher
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(enricher Enricher, logger Logger) *UseCase {
	return &UseCase{
		enricher: enricher,
		logger:   logger,
	}
}

// Execute собирает сводку: проверяет готовность шагов, дозаполняет
// имена барберов и позиции в очереди, считает итог
func (uc *UseCase) Execute(ctx context.Context, store DraftStore) (*Response, error) {
	// 1. Гейт: все предыдущие шаги должны быть завершены
	draft := store.Get()
	if err := uc.validateDraft(draft); err != nil {
		uc.logger.Warn("GetBillingSummary: draft is not ready: %v", err)
		return nil, err
	}

	// 2. Дозаполняем отсутствующие имена и позиции (additive merge)
	notices := uc.enricher.Enrich(ctx, store)

	// 3. Позиции, которых не оказалось в кеше, запрашиваем у удаленного API
	draft = store.Get()
	if hasUnresolvedPositions(draft) {
		notices = append(notices, uc.enricher.RefreshQueuePositions(ctx, store)...)
		draft = store.Get()
	}

	// 4. Итог считается по снапшоту после enrichment'а
	total := domain.ComputeTotal(draft.Services)

	uc.logger.Info("GetBillingSummary: summary built, services = %d, total = %.2f", len(draft.Services), total)
	return &Response{
		Draft:   draft,
		Total:   total,
		Notices: notices,
	}, nil
}

func hasUnresolvedPositions(draft domain.BookingDraft) bool {
	for _, svc := range draft.Services {
		if !svc.QueuePosition.IsResolved() {
			return true
		}
	}
	return false
}

func (uc *UseCase) validateDraft(draft domain.BookingDraft) error {
	if !draft.HasServices() {
		return ErrNoServices
	}
	if !draft.ServicesComplete() {
		return ErrIncompleteServices
	}
	if !draft.HasCustomerIdentity() {
		return ErrMissingCustomerDetails
	}
	if !draft.HasSchedule() {
		return ErrMissingSchedule
	}
	return nil
}
