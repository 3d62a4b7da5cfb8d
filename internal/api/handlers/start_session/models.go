package start_session

import "github.com/m04kA/EL-BookingFlow/internal/domain"

// StartSessionResponse HTTP response model
type StartSessionResponse struct {
	SessionID     string `json:"sessionId"`
	ContactNumber string `json:"contactNumber,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// FromDraft собирает ответ из засеянного черновика новой сессии
func FromDraft(sessionID string, d domain.BookingDraft) *StartSessionResponse {
	return &StartSessionResponse{
		SessionID:     sessionID,
		ContactNumber: d.ContactNumber,
		PaymentMethod: string(d.PaymentMethod),
	}
}
