package get_payments

import "github.com/m04kA/EL-BookingFlow/internal/service/admin/models"

// PaymentsResponse HTTP response model
type PaymentsResponse struct {
	Payments []models.PaymentView `json:"payments"`
}
