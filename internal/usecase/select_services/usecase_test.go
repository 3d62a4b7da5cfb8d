package select_services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	selectServices "github.com/m04kA/EL-BookingFlow/internal/usecase/select_services"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeCatalog struct {
	mu       sync.Mutex
	services map[string]*barbershop.CatalogService
	errs     map[string]error
}

func (c *fakeCatalog) GetServiceByType(ctx context.Context, serviceType string) (*barbershop.CatalogService, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.errs[serviceType]; ok {
		return nil, err
	}
	svc, ok := c.services[serviceType]
	if !ok {
		return nil, barbershop.ErrServiceUnavailable
	}
	return svc, nil
}

type fakeStore struct {
	mu    sync.Mutex
	draft domain.BookingDraft
}

func (s *fakeStore) Patch(ctx context.Context, p domain.DraftPatch) domain.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Apply(p)
	return s.draft.Clone()
}

func TestExecute_ResolvesServicesInSelectionOrder(t *testing.T) {
	catalog := &fakeCatalog{services: map[string]*barbershop.CatalogService{
		"Haircut": {ServiceID: "s1", ServiceType: "Haircut", ServicePrice: 400},
		"Shave":   {ServiceID: "s2", ServiceType: "Shave", ServicePrice: 500},
	}}
	store := &fakeStore{}
	uc := selectServices.NewUseCase(catalog, fakeLogger{})

	resp, err := uc.Execute(context.Background(), store, &selectServices.Request{
		StaffID:      "b1",
		ServiceTypes: []string{"Haircut", "Shave"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Services, 2)

	// Порядок ответа = порядок выбора, несмотря на конкурентный резолв
	assert.Equal(t, "Haircut", resp.Services[0].ServiceName)
	assert.Equal(t, "Shave", resp.Services[1].ServiceName)
	assert.Equal(t, "s1", resp.Services[0].ServiceID)
	assert.Equal(t, 400.0, resp.Services[0].ServicePrice.Float64())
	assert.Equal(t, "b1", resp.Services[0].StaffID)

	// Enrichment еще не запускался
	assert.Empty(t, resp.Services[0].StaffName)
	assert.False(t, resp.Services[0].QueuePosition.IsResolved())
}

func TestExecute_ReplacesPreviousSelectionWholesale(t *testing.T) {
	catalog := &fakeCatalog{services: map[string]*barbershop.CatalogService{
		"Hair Color": {ServiceID: "s3", ServiceType: "Hair Color", ServicePrice: 700},
	}}
	store := &fakeStore{draft: domain.BookingDraft{
		Services: []domain.ServiceSelection{
			{ServiceID: "s1", ServiceName: "Haircut", StaffID: "b1"},
			{ServiceID: "s2", ServiceName: "Shave", StaffID: "b1"},
		},
	}}
	uc := selectServices.NewUseCase(catalog, fakeLogger{})

	resp, err := uc.Execute(context.Background(), store, &selectServices.Request{
		StaffID:      "b2",
		ServiceTypes: []string{"Hair Color"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Hair Color", resp.Services[0].ServiceName)
	assert.Equal(t, "b2", resp.Services[0].StaffID)
}

func TestExecute_NoBarberSelected(t *testing.T) {
	uc := selectServices.NewUseCase(&fakeCatalog{}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &fakeStore{}, &selectServices.Request{
		ServiceTypes: []string{"Haircut"},
	})

	assert.ErrorIs(t, err, selectServices.ErrNoBarberSelected)
}

func TestExecute_EmptyServices(t *testing.T) {
	uc := selectServices.NewUseCase(&fakeCatalog{}, fakeLogger{})

	_, err := uc.Execute(context.Background(), &fakeStore{}, &selectServices.Request{StaffID: "b1"})
	assert.ErrorIs(t, err, selectServices.ErrEmptyServices)

	_, err = uc.Execute(context.Background(), &fakeStore{}, &selectServices.Request{
		StaffID:      "b1",
		ServiceTypes: []string{"Haircut", ""},
	})
	assert.ErrorIs(t, err, selectServices.ErrEmptyServices)
}

// Неудача одного каталожного lookup'а отклоняет весь шаг: частичный
// список услуг в черновик не попадает
func TestExecute_PartialCatalogFailureRejectsStep(t *testing.T) {
	catalog := &fakeCatalog{
		services: map[string]*barbershop.CatalogService{
			"Haircut": {ServiceID: "s1", ServiceType: "Haircut", ServicePrice: 400},
		},
	}
	store := &fakeStore{}
	uc := selectServices.NewUseCase(catalog, fakeLogger{})

	_, err := uc.Execute(context.Background(), store, &selectServices.Request{
		StaffID:      "b1",
		ServiceTypes: []string{"Haircut", "Massage"},
	})

	assert.ErrorIs(t, err, selectServices.ErrServiceUnavailable)
	assert.Empty(t, store.draft.Services)
}

func TestExecute_CatalogErrorIsInternal(t *testing.T) {
	catalog := &fakeCatalog{errs: map[string]error{"Haircut": errors.New("connection refused")}}
	uc := selectServices.NewUseCase(catalog, fakeLogger{})

	_, err := uc.Execute(context.Background(), &fakeStore{}, &selectServices.Request{
		StaffID:      "b1",
		ServiceTypes: []string{"Haircut"},
	})

	assert.ErrorIs(t, err, selectServices.ErrInternal)
}
