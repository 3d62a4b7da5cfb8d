package enrichment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/EL-BookingFlow/internal/infra/cache"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// Coordinator резолвит производные поля черновика, которые пользователь
// не вводил руками: имена сотрудников и позиции в очереди
//
// Гарантии:
//   - все lookup'ы одного прохода выполняются конкурентно (fan-out),
//     точка синхронизации одна - ожидание всей группы
//   - мерж аддитивный и идемпотентный: повторный проход дает тот же
//     результат и никогда не затирает уже резолвленное поле
//   - неудачный lookup не теряет результаты соседних: его услуга просто
//     остается с прежним значением, а неудача попадает в notices
type Coordinator struct {
	client  BarberClient
	cache   Cache
	logger  Logger
	metrics LookupMetrics
}

// NewCoordinator создает координатор enrichment'а
// metrics может быть nil, если метрики выключены
func NewCoordinator(client BarberClient, c Cache, logger Logger, metrics LookupMetrics) *Coordinator {
	return &Coordinator{
		client:  client,
		cache:   c,
		logger:  logger,
		metrics: metrics,
	}
}

// Enrich выполняет один проход enrichment'а над черновиком сессии
// Работает по snapshot'у, мержит результаты через Resolve*-операции store -
// конкурентный пользовательский ввод не затирается. Возвращает notices о
// неудачных lookup'ах; ошибок не возвращает - неудачи не фатальны и не
// блокируют флоу
func (c *Coordinator) Enrich(ctx context.Context, store DraftStore) []string {
	snapshot := store.Get()

	var (
		mu      sync.Mutex
		notices []string
		wg      sync.WaitGroup
	)

	addNotice := func(format string, v ...interface{}) {
		mu.Lock()
		notices = append(notices, fmt.Sprintf(format, v...))
		mu.Unlock()
		if c.metrics != nil {
			c.metrics.IncEnrichmentLookupError()
		}
	}

	// Fan-out: имя сотрудника для каждой услуги, где оно еще не резолвлено
	seenStaff := make(map[string]bool)
	for _, svc := range snapshot.Services {
		if svc.StaffName != "" || svc.StaffID == "" || seenStaff[svc.StaffID] {
			continue
		}
		seenStaff[svc.StaffID] = true

		wg.Add(1)
		go func(staffID string) {
			defer wg.Done()

			name, err := c.client.GetStaffName(ctx, staffID)
			if err != nil {
				c.logger.Warn("Enrich: staff name lookup failed for staffID=%s: %v", staffID, err)
				addNotice("Could not load the name of staff %s", staffID)
				return
			}
			store.ResolveStaffName(staffID, name)
		}(svc.StaffID)
	}

	// Fan-out: позиция в очереди из кеша по имени услуги
	// Промах кеша не notice: нерезолвленная позиция отображается явным
	// "Not available", а не пустотой
	for _, svc := range snapshot.Services {
		if svc.QueuePosition.IsResolved() || svc.ServiceName == "" {
			continue
		}

		wg.Add(1)
		go func(serviceName string) {
			defer wg.Done()

			pos, err := c.cache.GetQueuePosition(ctx, serviceName)
			if err != nil {
				if !errors.Is(err, cache.ErrCacheMiss) {
					c.logger.Warn("Enrich: queue position cache read failed for service=%s: %v", serviceName, err)
				}
				return
			}
			store.ResolveQueuePosition(serviceName, pos)
		}(svc.ServiceName)
	}

	// Единственный барьер синхронизации - ожидание всей группы
	wg.Wait()

	return notices
}

// RefreshQueuePositions запрашивает актуальные позиции в очереди у удаленного
// API, мержит их в черновик и сохраняет в кеш (по имени услуги)
// Позиции приходят в порядке переданных услуг. Неудача не фатальна
func (c *Coordinator) RefreshQueuePositions(ctx context.Context, store DraftStore) []string {
	snapshot := store.Get()
	if len(snapshot.Services) == 0 {
		return nil
	}

	request := make([]barbershop.SubmittedService, len(snapshot.Services))
	for i, svc := range snapshot.Services {
		request[i] = barbershop.SubmittedService{
			ServiceID:    svc.ServiceID,
			StaffID:      svc.StaffID,
			ServiceName:  svc.ServiceName,
			ServicePrice: svc.ServicePrice,
		}
	}

	positions, err := c.client.GetQueuePositions(ctx, request)
	if err != nil {
		c.logger.Warn("RefreshQueuePositions: lookup failed: %v", err)
		if c.metrics != nil {
			c.metrics.IncEnrichmentLookupError()
		}
		return []string{"Could not load queue positions"}
	}

	for i, pos := range positions {
		serviceName := snapshot.Services[i].ServiceName
		store.ResolveQueuePosition(serviceName, pos)

		if err := c.cache.SetQueuePosition(ctx, serviceName, pos); err != nil {
			c.logger.Warn("RefreshQueuePositions: failed to cache position for service=%s: %v", serviceName, err)
		}
	}

	return nil
}
