package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

func TestNormalizeSlotTime(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "9:00 AM", want: "09:00"},
		{label: "12:00 PM", want: "12:00"},
		{label: "1:00 PM", want: "13:00"},
		{label: "8:00 PM", want: "20:00"},
		{label: "13:00", want: "13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := domain.NormalizeSlotTime(tt.label)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNormalizeSlotTime_Invalid(t *testing.T) {
	_, err := domain.NormalizeSlotTime("half past noon")

	assert.Error(t, err)
}

// Каждый label фиксированного набора слотов обязан проходить нормализацию:
// проверка доступности и отправка бронирования используют одну и ту же функцию
func TestNormalizeSlotTime_AcceptsAllSlotLabels(t *testing.T) {
	for _, label := range domain.SlotLabels {
		_, err := domain.NormalizeSlotTime(label)
		require.NoError(t, err, "label %q", label)
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Run("iso date passes through", func(t *testing.T) {
		got, err := domain.NormalizeDate("2026-09-15")

		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", got)
	})

	t.Run("rfc3339 timestamp is truncated to date", func(t *testing.T) {
		got, err := domain.NormalizeDate("2026-09-15T10:30:00Z")

		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", got)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := domain.NormalizeDate("next tuesday")

		assert.Error(t, err)
	})
}

func TestIsKnownSlotLabel(t *testing.T) {
	assert.True(t, domain.IsKnownSlotLabel("1:00 PM"))
	assert.False(t, domain.IsKnownSlotLabel("1:30 PM"))
	assert.False(t, domain.IsKnownSlotLabel("13:00"))
}
