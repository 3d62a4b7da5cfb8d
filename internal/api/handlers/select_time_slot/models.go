package select_time_slot

import selectTimeSlot "github.com/m04kA/EL-BookingFlow/internal/usecase/select_time_slot"

// SelectTimeSlotRequest HTTP request model
type SelectTimeSlotRequest struct {
	Time string `json:"time"` // display label, например "1:00 PM"
}

// SelectTimeSlotResponse HTTP response model
type SelectTimeSlotResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectTimeSlot.Response) *SelectTimeSlotResponse {
	return &SelectTimeSlotResponse{
		Date: resp.Date,
		Time: resp.Time,
	}
}
