package get_billing_summary

import "errors"

// Гейт биллинга: нарушение возвращает пользователя на самый ранний шаг
// с неисполненным инвариантом
var (
	// ErrNoServices возвращается, когда в черновике нет ни одной услуги
	ErrNoServices = errors.New("get_billing_summary: no services selected")

	// ErrIncompleteServices возвращается, когда у услуги не заполнены обязательные поля
	ErrIncompleteServices = errors.New("get_billing_summary: service selection is incomplete")

	// ErrMissingCustomerDetails возвращается, когда не заполнены имя или email клиента
	ErrMissingCustomerDetails = errors.New("get_billing_summary: customer details are missing")

	// ErrMissingSchedule возвращается, когда не выбраны дата или время
	ErrMissingSchedule = errors.New("get_billing_summary: schedule is missing")
)
