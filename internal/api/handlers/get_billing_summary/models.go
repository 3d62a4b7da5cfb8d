package get_billing_summary

import (
	"github.com/m04kA/EL-BookingFlow/internal/domain"
	getBillingSummary "github.com/m04kA/EL-BookingFlow/internal/usecase/get_billing_summary"
)

// queueFallback выводится для нерезолвленной позиции в очереди
const queueFallback = "Not available"

// ServiceView услуга черновика в сводке биллинга
type ServiceView struct {
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	StaffID       string  `json:"staffId"`
	StaffName     string  `json:"staffName,omitempty"`
	QueuePosition string  `json:"queuePosition"`
}

// BillingSummaryResponse HTTP response model
type BillingSummaryResponse struct {
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	ContactNumber string        `json:"contactNumber,omitempty"`
	Services      []ServiceView `json:"services"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Total         float64       `json:"total"`
	Notices       []string      `json:"notices,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBillingSummary.Response) *BillingSummaryResponse {
	views := make([]ServiceView, 0, len(resp.Draft.Services))
	for _, svc := range resp.Draft.Services {
		views = append(views, fromSelection(svc))
	}

	return &BillingSummaryResponse{
		CustomerName:  resp.Draft.CustomerName,
		CustomerEmail: resp.Draft.CustomerEmail,
		ContactNumber: resp.Draft.ContactNumber,
		Services:      views,
		Date:          resp.Draft.Date,
		Time:          resp.Draft.Time,
		PaymentMethod: string(resp.Draft.PaymentMethod),
		Total:         resp.Total,
		Notices:       resp.Notices,
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
