package barbershop

import (
	"encoding/json"

	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// StaffMember сотрудник из справочника персонала
type StaffMember struct {
	StaffID   string `json:"staffID"`
	StaffName string `json:"staffName"`
}

// CatalogService услуга из каталога удаленного API
type CatalogService struct {
	ServiceID    string       `json:"serviceID"`
	ServiceType  string       `json:"serviceType"`
	ServicePrice domain.Price `json:"servicePrice"`
}

// AvailabilityResult результат проверки доступности слота
type AvailabilityResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusAvailable значение Status для свободного слота
const StatusAvailable = "available"

// Available возвращает true, если слот свободен
func (r *AvailabilityResult) Available() bool {
	return r.Status == StatusAvailable
}

// SubmittedService услуга в составе отправляемого бронирования
type SubmittedService struct {
	ServiceID     string               `json:"serviceID"`
	StaffID       string               `json:"staffID"`
	ServiceName   string               `json:"serviceName"`
	ServicePrice  domain.Price         `json:"servicePrice"`
	QueuePosition domain.QueuePosition `json:"queuePosition"`
}

// BookingSubmission полный payload отправки бронирования
// Дата и время уже нормализованы (YYYY-MM-DD / HH:MM)
type BookingSubmission struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	ContactNo     string             `json:"contactNo"`
	Services      []SubmittedService `json:"services"`
	Date          string             `json:"date"`
	Time          string             `json:"time"`
	PaymentMethod string             `json:"paymentMethod"`
	TotalPrice    float64            `json:"totalPrice"`
}

// BookingRecord запись бронирования для административного списка
type BookingRecord struct {
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	Service      string `json:"service"`
	StaffName    string `json:"staffName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// PaymentRecord запись платежа для административного списка
type PaymentRecord struct {
	BookingID     string       `json:"bookingID"`
	CustomerName  string       `json:"customerName"`
	ServiceType   string       `json:"serviceType"`
	ServicePrice  domain.Price `json:"servicePrice"`
	ContactNo     string       `json:"contactNo"`
	PaymentMethod string       `json:"paymentMethod"`
	Status        string       `json:"status"`
}

// Статусы платежей удаленного API
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusCanceled  = "Canceled"
)

// envelope обертка ответов удаленного API вида {"success": ..., "data": ...}
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type staffNameResponse struct {
	StaffName string `json:"staffName"`
}

type bookedTimesRequest struct {
	Date string `json:"date"`
}

type availabilityRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type queuePositionsRequest struct {
	Services []SubmittedService `json:"services"`
}

type queuePositionsResponse struct {
	Positions []domain.QueuePosition `json:"positions"`
}

type paymentStatusRequest struct {
	BookingID string `json:"bookingID"`
	Status    string `json:"status,omitempty"`
}
