package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/pkg/ptr"
)

func TestBookingDraft_Apply(t *testing.T) {
	draft := domain.BookingDraft{
		CustomerName: "Juan",
		Date:         "2026-09-15",
	}

	draft.Apply(domain.DraftPatch{
		CustomerEmail: ptr.Ptr("juan@example.com"),
		Time:          ptr.Ptr("1:00 PM"),
	})

	// Незатронутые патчем поля сохраняются
	assert.Equal(t, "Juan", draft.CustomerName)
	assert.Equal(t, "2026-09-15", draft.Date)
	assert.Equal(t, "juan@example.com", draft.CustomerEmail)
	assert.Equal(t, "1:00 PM", draft.Time)
}

func TestBookingDraft_Apply_ServicesReplacedWholesale(t *testing.T) {
	draft := domain.BookingDraft{
		Services: []domain.ServiceSelection{
			{ServiceID: "1", ServiceName: "Haircut", StaffID: "b1"},
			{ServiceID: "2", ServiceName: "Shave", StaffID: "b1"},
		},
	}

	draft.Apply(domain.DraftPatch{
		Services: []domain.ServiceSelection{
			{ServiceID: "3", ServiceName: "Hair Color", StaffID: "b2"},
		},
	})

	assert.Len(t, draft.Services, 1)
	assert.Equal(t, "Hair Color", draft.Services[0].ServiceName)

	// nil Services не трогает список
	draft.Apply(domain.DraftPatch{CustomerName: ptr.Ptr("Juan")})
	assert.Len(t, draft.Services, 1)
}

func TestBookingDraft_Clone_DoesNotShareServices(t *testing.T) {
	draft := domain.BookingDraft{
		Services: []domain.ServiceSelection{{ServiceID: "1", ServiceName: "Haircut", StaffID: "b1"}},
	}

	clone := draft.Clone()
	clone.Services[0].StaffName = "Juan"

	assert.Empty(t, draft.Services[0].StaffName)
}

func TestBookingDraft_Predicates(t *testing.T) {
	var draft domain.BookingDraft

	assert.False(t, draft.HasServices())
	assert.True(t, draft.ServicesComplete()) // пустой список вакуумно полон
	assert.False(t, draft.HasCustomerIdentity())
	assert.False(t, draft.HasSchedule())
	assert.False(t, draft.HasPaymentMethod())

	draft.Services = []domain.ServiceSelection{{ServiceID: "1", ServiceName: "Haircut", StaffID: "b1"}}
	draft.CustomerName = "Juan"
	draft.CustomerEmail = "juan@example.com"
	draft.Date = "2026-09-15"
	draft.Time = "1:00 PM"
	draft.PaymentMethod = domain.PaymentPayInStore

	assert.True(t, draft.HasServices())
	assert.True(t, draft.ServicesComplete())
	assert.True(t, draft.HasCustomerIdentity())
	assert.True(t, draft.HasSchedule())
	assert.True(t, draft.HasPaymentMethod())
}

func TestServiceSelection_IsComplete(t *testing.T) {
	complete := domain.ServiceSelection{ServiceID: "1", ServiceName: "Haircut", StaffID: "b1"}
	assert.True(t, complete.IsComplete())

	// StaffName и QueuePosition заполняет enrichment, на полноту не влияют
	assert.Empty(t, complete.StaffName)

	missingStaff := domain.ServiceSelection{ServiceID: "1", ServiceName: "Haircut"}
	assert.False(t, missingStaff.IsComplete())
}
