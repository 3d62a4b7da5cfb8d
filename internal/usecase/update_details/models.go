package update_details

import "github.com/m04kA/EL-BookingFlow/internal/domain"

// Request частичное обновление данных клиента и расписания
// nil-поле не трогает соответствующее поле черновика
type Request struct {
	CustomerName  *string
	CustomerEmail *string
	ContactNumber *string
	Date          *string
	PaymentMethod *string
}

// Response snapshot черновика после применения патча
type Response struct {
	Draft domain.BookingDraft
}
