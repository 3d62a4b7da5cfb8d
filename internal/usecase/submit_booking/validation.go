package submit_booking

import "github.com/m04kA/EL-BookingFlow/internal/domain"

// validateDraft проверяет полноту черновика перед отправкой
// Порядок проверок фиксированный: услуги, имя, email, дата, время,
// способ оплаты; возвращается первое нарушение
func validateDraft(draft domain.BookingDraft) error {
	if !draft.HasServices() {
		return ErrNoServices
	}
	if !draft.ServicesComplete() {
		return ErrIncompleteService
	}
	if draft.CustomerName == "" {
		return ErrMissingCustomerName
	}
	if draft.CustomerEmail == "" {
		return ErrMissingCustomerEmail
	}
	if draft.Date == "" {
		return ErrMissingDate
	}
	if draft.Time == "" {
		return ErrMissingTime
	}
	if !draft.HasPaymentMethod() {
		return ErrMissingPaymentMethod
	}
	return nil
}
