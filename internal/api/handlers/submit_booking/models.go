package submit_booking

import (
	"github.com/m04kA/EL-BookingFlow/internal/domain"
	submitBooking "github.com/m04kA/EL-BookingFlow/internal/usecase/submit_booking"
)

// queueFallback выводится для нерезолвленной позиции в очереди
const queueFallback = "Not available"

// ServiceView услуга подтвержденного бронирования
type ServiceView struct {
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	StaffID       string  `json:"staffId"`
	StaffName     string  `json:"staffName,omitempty"`
	QueuePosition string  `json:"queuePosition"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Services      []ServiceView `json:"services"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	PaymentMethod string        `json:"paymentMethod"`
	Total         float64       `json:"total"`
	Receipt       string        `json:"receipt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	views := make([]ServiceView, 0, len(resp.Draft.Services))
	for _, svc := range resp.Draft.Services {
		views = append(views, fromSelection(svc))
	}

	return &SubmitBookingResponse{
		CustomerName:  resp.Draft.CustomerName,
		CustomerEmail: resp.Draft.CustomerEmail,
		Services:      views,
		Date:          resp.Draft.Date,
		Time:          resp.Draft.Time,
		PaymentMethod: string(resp.Draft.PaymentMethod),
		Total:         resp.Total,
		Receipt:       resp.Receipt,
	}
}

func fromSelection(svc domain.ServiceSelection) ServiceView {
	return ServiceView{
		ServiceID:     svc.ServiceID,
		ServiceName:   svc.ServiceName,
		ServicePrice:  svc.ServicePrice.Float64(),
		StaffID:       svc.StaffID,
		StaffName:     svc.StaffName,
		QueuePosition: svc.QueuePosition.Display(queueFallback),
	}
}
