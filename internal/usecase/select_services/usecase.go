package select_services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	barberClient "github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// UseCase use case шага выбора услуг
// Резолвит выбранные типы услуг через каталог удаленного API и целиком
// заменяет список услуг черновика
type UseCase struct {
	client CatalogClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет шаг выбора услуг
func (uc *UseCase) Execute(ctx context.Context, store DraftStore, req *Request) (*Response, error) {
	uc.logger.Info("SelectServices: staff=%s, services=%d", req.StaffID, len(req.ServiceTypes))

	// 1. Валидация входных данных (гейт шага)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectServices: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим каждый тип услуги через каталог конкурентно
	// Запись по индексу сохраняет порядок выбора несмотря на fan-out
	selections := make([]domain.ServiceSelection, len(req.ServiceTypes))
	lookupErrs := make([]error, len(req.ServiceTypes))

	var wg sync.WaitGroup
	for i, serviceType := range req.ServiceTypes {
		wg.Add(1)
		go func(i int, serviceType string) {
			defer wg.Done()

			service, err := uc.client.GetServiceByType(ctx, serviceType)
			if err != nil {
				lookupErrs[i] = err
				return
			}

			selections[i] = domain.ServiceSelection{
				ServiceID:     service.ServiceID,
				ServiceName:   service.ServiceType,
				ServicePrice:  service.ServicePrice,
				StaffID:       req.StaffID,
				QueuePosition: domain.UnknownQueuePosition(),
			}
		}(i, serviceType)
	}
	wg.Wait()

	// 3. Любая неудача каталога отклоняет весь шаг - частично
	// заполненный список услуг в черновик не попадает
	for i, err := range lookupErrs {
		if err == nil {
			continue
		}
		if errors.Is(err, barberClient.ErrServiceUnavailable) {
			uc.logger.Warn("SelectServices: service %q is not available", req.ServiceTypes[i])
			return nil, fmt.Errorf("%w: %q", ErrServiceUnavailable, req.ServiceTypes[i])
		}
		uc.logger.Error("SelectServices: catalog lookup failed for %q: %v", req.ServiceTypes[i], err)
		return nil, fmt.Errorf("%w: catalog lookup failed: %v", ErrInternal, err)
	}

	// 4. Целиком заменяем список услуг черновика
	updated := store.Patch(ctx, domain.DraftPatch{Services: selections})

	uc.logger.Info("SelectServices: draft now holds %d services", len(updated.Services))
	return &Response{Services: updated.Services}, nil
}
