package select_services

import (
	"github.com/m04kA/EL-BookingFlow/internal/domain"
	selectServices "github.com/m04kA/EL-BookingFlow/internal/usecase/select_services"
)

// queueFallback выводится для нерезолвленной позиции в очереди
const queueFallback = "Not available"

// SelectServicesRequest HTTP request model
type SelectServicesRequest struct {
	StaffID  string   `json:"staffId"`
	Services []string `json:"services"`
}

// ServiceView услуга черновика в HTTP ответах
type ServiceView struct {
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	StaffID       string  `json:"staffId"`
	StaffName     string  `json:"staffName,omitempty"`
	QueuePosition string  `json:"queuePosition"`
}

// SelectServicesResponse HTTP response model
type SelectServicesResponse struct {
	Services []ServiceView `json:"services"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectServicesRequest) ToUseCaseRequest() *selectServices.Request {
	return &selectServices.Request{
		StaffID:      r.StaffID,
		ServiceTypes: r.Services,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectServices.Response) *SelectServicesResponse {
	views := make([]ServiceView, 0, len(resp.Services))
	for _, svc := range resp.Services {
		views = append(views, fromSelection(svc))
	}
	return &SelectServicesResponse{Services: views}
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
