package select_time_slot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	selectTimeSlot "github.com/m04kA/EL-BookingFlow/internal/usecase/select_time_slot"
	"github.com/m04kA/EL-BookingFlow/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeAvailability struct {
	result    *barbershop.AvailabilityResult
	err       error
	gotDate   string
	gotTime   types.TimeString
	callCount int
}

func (c *fakeAvailability) CheckAvailability(ctx context.Context, date string, t types.TimeString) (*barbershop.AvailabilityResult, error) {
	c.callCount++
	c.gotDate = date
	c.gotTime = t
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

type fakeStore struct {
	draft domain.BookingDraft
}

func (s *fakeStore) Get() domain.BookingDraft {
	return s.draft.Clone()
}

func (s *fakeStore) Patch(ctx context.Context, p domain.DraftPatch) domain.BookingDraft {
	s.draft.Apply(p)
	return s.draft.Clone()
}

func TestExecute_AcceptsAvailableSlot(t *testing.T) {
	client := &fakeAvailability{result: &barbershop.AvailabilityResult{Status: barbershop.StatusAvailable}}
	store := &fakeStore{draft: domain.BookingDraft{Date: "2026-09-15"}}
	uc := selectTimeSlot.NewUseCase(client, fakeLogger{})

	resp, err := uc.Execute(context.Background(), store, &selectTimeSlot.Request{TimeLabel: "1:00 PM"})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, "1:00 PM", resp.Time)
	assert.Equal(t, "1:00 PM", store.draft.Time)

	// Проверка доступности получает нормализованные дату и время
	assert.Equal(t, "2026-09-15", client.gotDate)
	assert.Equal(t, "13:00", client.gotTime.String())
}

// Занятый слот не трогает черновик: прежний выбор сохраняется
func TestExecute_TakenSlotLeavesPreviousChoice(t *testing.T) {
	client := &fakeAvailability{result: &barbershop.AvailabilityResult{
		Status:  "unavailable",
		Message: "slot already booked",
	}}
	store := &fakeStore{draft: domain.BookingDraft{Date: "2026-09-15", Time: "2:00 PM"}}
	uc := selectTimeSlot.NewUseCase(client, fakeLogger{})

	_, err := uc.Execute(context.Background(), store, &selectTimeSlot.Request{TimeLabel: "1:00 PM"})

	assert.ErrorIs(t, err, selectTimeSlot.ErrSlotTaken)
	assert.Contains(t, err.Error(), "slot already booked")
	assert.Equal(t, "2:00 PM", store.draft.Time)
}

func TestExecute_NoDateSelected(t *testing.T) {
	client := &fakeAvailability{}
	uc := selectTimeSlot.NewUseCase(client, fakeLogger{})

	_, err := uc.Execute(context.Background(), &fakeStore{}, &selectTimeSlot.Request{TimeLabel: "1:00 PM"})

	assert.ErrorIs(t, err, selectTimeSlot.ErrNoDateSelected)
	assert.Equal(t, 0, client.callCount)
}

func TestExecute_UnknownTimeSlot(t *testing.T) {
	client := &fakeAvailability{}
	store := &fakeStore{draft: domain.BookingDraft{Date: "2026-09-15"}}
	uc := selectTimeSlot.NewUseCase(client, fakeLogger{})

	_, err := uc.Execute(context.Background(), store, &selectTimeSlot.Request{TimeLabel: "1:30 PM"})

	assert.ErrorIs(t, err, selectTimeSlot.ErrUnknownTimeSlot)
	assert.Equal(t, 0, client.callCount)
}

func TestExecute_AvailabilityCheckFailure(t *testing.T) {
	client := &fakeAvailability{err: errors.New("remote down")}
	store := &fakeStore{draft: domain.BookingDraft{Date: "2026-09-15"}}
	uc := selectTimeSlot.NewUseCase(client, fakeLogger{})

	_, err := uc.Execute(context.Background(), store, &selectTimeSlot.Request{TimeLabel: "1:00 PM"})

	assert.ErrorIs(t, err, selectTimeSlot.ErrInternal)
	assert.Empty(t, store.draft.Time)
}
