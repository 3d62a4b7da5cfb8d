package get_billing_summary

import "github.com/m04kA/EL-BookingFlow/internal/domain"

// Response итоговая сводка перед подтверждением брони
type Response struct {
	Draft   domain.BookingDraft
	Total   float64
	Notices []string
}
