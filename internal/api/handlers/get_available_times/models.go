package get_available_times

import getAvailableTimes "github.com/m04kA/EL-BookingFlow/internal/usecase/get_available_times"

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	return &AvailableTimesResponse{
		Date:  resp.Date,
		Times: resp.Times,
	}
}
