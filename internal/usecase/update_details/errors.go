package update_details

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("update_details: invalid date")

	// ErrInvalidPaymentMethod возвращается для неподдерживаемого способа оплаты
	ErrInvalidPaymentMethod = errors.New("update_details: invalid payment method")
)
