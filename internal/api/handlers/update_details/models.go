package update_details

import (
	"github.com/m04kA/EL-BookingFlow/internal/domain"
	updateDetails "github.com/m04kA/EL-BookingFlow/internal/usecase/update_details"
)

// UpdateDetailsRequest HTTP request model
// Отсутствующее поле не трогает соответствующее поле черновика
type UpdateDetailsRequest struct {
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Date          *string `json:"date,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// DraftView черновик в HTTP ответе
type DraftView struct {
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	ServiceCount  int    `json:"serviceCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDetailsRequest) ToUseCaseRequest() *updateDetails.Request {
	return &updateDetails.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		ContactNumber: r.ContactNumber,
		Date:          r.Date,
		PaymentMethod: r.PaymentMethod,
	}
}

// FromDraft конвертирует черновик в HTTP response
func FromDraft(d domain.BookingDraft) *DraftView {
	return &DraftView{
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		ContactNumber: d.ContactNumber,
		Date:          d.Date,
		Time:          d.Time,
		PaymentMethod: string(d.PaymentMethod),
		ServiceCount:  len(d.Services),
	}
}
