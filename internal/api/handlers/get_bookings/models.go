package get_bookings

import "github.com/m04kA/EL-BookingFlow/internal/service/admin/models"

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []models.BookingView `json:"bookings"`
}
