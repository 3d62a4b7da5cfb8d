package submit_booking

import "github.com/m04kA/EL-BookingFlow/internal/domain"

// Response результат успешной отправки бронирования
type Response struct {
	Draft   domain.BookingDraft
	Total   float64
	Receipt string
}
