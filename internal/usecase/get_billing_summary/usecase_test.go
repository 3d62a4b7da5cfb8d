package get_billing_summary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/infra/cache"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	"github.com/m04kA/EL-BookingFlow/internal/service/enrichment"
	getBillingSummary "github.com/m04kA/EL-BookingFlow/internal/usecase/get_billing_summary"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeContactCache struct{}

func (fakeContactCache) GetContactDetails(ctx context.Context) (string, domain.PaymentMethod, error) {
	return "", "", cache.ErrCacheMiss
}

func (fakeContactCache) SetContactDetails(ctx context.Context, contactNo string, payment domain.PaymentMethod) error {
	return nil
}

// fakeEnricher управляемый enrichment: резолвит имена по карте и
// считает вызовы
type fakeEnricher struct {
	staffNames     map[string]string
	queuePositions map[string]domain.QueuePosition
	enrichNotices  []string
	refreshNotices []string
	enrichCalls    int
	refreshCalls   int
}

func (e *fakeEnricher) Enrich(ctx context.Context, store enrichment.DraftStore) []string {
	e.enrichCalls++
	for staffID, name := range e.staffNames {
		store.ResolveStaffName(staffID, name)
	}
	return e.enrichNotices
}

func (e *fakeEnricher) RefreshQueuePositions(ctx context.Context, store enrichment.DraftStore) []string {
	e.refreshCalls++
	for serviceName, pos := range e.queuePositions {
		store.ResolveQueuePosition(serviceName, pos)
	}
	return e.refreshNotices
}

func readyDraftPatch() domain.DraftPatch {
	name := "Juan"
	email := "juan@example.com"
	date := "2026-09-15"
	slot := "1:00 PM"
	return domain.DraftPatch{
		CustomerName:  &name,
		CustomerEmail: &email,
		Date:          &date,
		Time:          &slot,
		Services: []domain.ServiceSelection{
			{ServiceID: "s1", ServiceName: "Haircut", ServicePrice: 400, StaffID: "b1"},
			{ServiceID: "s2", ServiceName: "Shave", ServicePrice: 500, StaffID: "b1"},
		},
	}
}

func newSessionStore(t *testing.T, patch domain.DraftPatch) *draft.Store {
	t.Helper()
	manager := draft.NewManager(fakeContactCache{}, fakeLogger{}, time.Hour, nil)
	store := manager.CreateSession(context.Background())
	store.Patch(context.Background(), patch)
	return store
}

func TestExecute_BuildsEnrichedSummary(t *testing.T) {
	store := newSessionStore(t, readyDraftPatch())
	enricher := &fakeEnricher{
		staffNames: map[string]string{"b1": "Pedro"},
		queuePositions: map[string]domain.QueuePosition{
			"Haircut": domain.ScalarQueuePosition("3"),
			"Shave":   domain.ScalarQueuePosition("1"),
		},
	}
	uc := getBillingSummary.NewUseCase(enricher, fakeLogger{})

	resp, err := uc.Execute(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, 900.0, resp.Total)
	assert.Equal(t, "Pedro", resp.Draft.Services[0].StaffName)
	assert.Equal(t, "3", resp.Draft.Services[0].QueuePosition.Display("-"))
	assert.Empty(t, resp.Notices)
	assert.Equal(t, 1, enricher.enrichCalls)
}

// Позиции, не найденные кешем, дозапрашиваются у удаленного API
func TestExecute_RefreshesUnresolvedPositions(t *testing.T) {
	store := newSessionStore(t, readyDraftPatch())
	enricher := &fakeEnricher{
		staffNames: map[string]string{"b1": "Pedro"},
		queuePositions: map[string]domain.QueuePosition{
			"Haircut": domain.ScalarQueuePosition("3"),
			"Shave":   domain.ScalarQueuePosition("1"),
		},
	}
	// Enrich имен не дает позиций: refresh обязан сработать
	enricher.staffNames = map[string]string{"b1": "Pedro"}
	uc := getBillingSummary.NewUseCase(enricher, fakeLogger{})

	resp, err := uc.Execute(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, 1, enricher.refreshCalls)
	assert.Equal(t, "1", resp.Draft.Services[1].QueuePosition.Display("-"))
}

// Когда все позиции уже резолвлены, повторный запрос не выполняется
func TestExecute_SkipsRefreshWhenResolved(t *testing.T) {
	store := newSessionStore(t, readyDraftPatch())
	store.ResolveQueuePosition("Haircut", domain.ScalarQueuePosition("3"))
	store.ResolveQueuePosition("Shave", domain.ScalarQueuePosition("1"))

	enricher := &fakeEnricher{staffNames: map[string]string{"b1": "Pedro"}}
	uc := getBillingSummary.NewUseCase(enricher, fakeLogger{})

	_, err := uc.Execute(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, 0, enricher.refreshCalls)
}

func TestExecute_CollectsNotices(t *testing.T) {
	store := newSessionStore(t, readyDraftPatch())
	enricher := &fakeEnricher{
		enrichNotices:  []string{"Could not load the name of staff b1"},
		refreshNotices: []string{"Could not load queue positions"},
	}
	uc := getBillingSummary.NewUseCase(enricher, fakeLogger{})

	resp, err := uc.Execute(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Could not load the name of staff b1",
		"Could not load queue positions",
	}, resp.Notices)

	// Неудачи enrichment'а не блокируют сводку
	assert.Equal(t, 900.0, resp.Total)
}

func TestExecute_GateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.DraftPatch)
		want   error
	}{
		{
			name:   "no services",
			mutate: func(p *domain.DraftPatch) { p.Services = []domain.ServiceSelection{} },
			want:   getBillingSummary.ErrNoServices,
		},
		{
			name:   "incomplete service",
			mutate: func(p *domain.DraftPatch) { p.Services[0].ServiceID = "" },
			want:   getBillingSummary.ErrIncompleteServices,
		},
		{
			name:   "missing customer details",
			mutate: func(p *domain.DraftPatch) { *p.CustomerEmail = "" },
			want:   getBillingSummary.ErrMissingCustomerDetails,
		},
		{
			name:   "missing schedule",
			mutate: func(p *domain.DraftPatch) { *p.Time = "" },
			want:   getBillingSummary.ErrMissingSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := readyDraftPatch()
			tt.mutate(&patch)
			store := newSessionStore(t, patch)
			enricher := &fakeEnricher{}

			_, err := getBillingSummary.NewUseCase(enricher, fakeLogger{}).Execute(context.Background(), store)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, enricher.enrichCalls)
		})
	}
}
