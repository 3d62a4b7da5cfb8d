package models

import (
	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

// BookingView бронирование для административного списка
type BookingView struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	Service      string `json:"service"`
	StaffName    string `json:"staffName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// PaymentView платеж для административного списка
type PaymentView struct {
	BookingID     string  `json:"bookingId"`
	CustomerName  string  `json:"customerName"`
	ServiceType   string  `json:"serviceType"`
	ServicePrice  float64 `json:"servicePrice"`
	ContactNo     string  `json:"contactNo"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
}

// FromBookingRecord конвертирует запись удаленного API в view-модель
func FromBookingRecord(r barbershop.BookingRecord) BookingView {
	return BookingView{
		BookingID:    r.BookingID,
		CustomerName: r.CustomerName,
		Service:      r.Service,
		StaffName:    r.StaffName,
		Date:         r.Date,
		Time:         r.Time,
	}
}

// FromPaymentRecord конвертирует запись удаленного API в view-модель
func FromPaymentRecord(r barbershop.PaymentRecord) PaymentView {
	return PaymentView{
		BookingID:     r.BookingID,
		CustomerName:  r.CustomerName,
		ServiceType:   r.ServiceType,
		ServicePrice:  r.ServicePrice.Float64(),
		ContactNo:     r.ContactNo,
		PaymentMethod: r.PaymentMethod,
		Status:        r.Status,
	}
}
