package submit_booking

import "errors"

// Ошибки валидации перечислены в порядке проверки: возвращается первая
// нарушенная, остальные не проверяются
var (
	// ErrNoServices возвращается, когда в черновике нет ни одной услуги
	ErrNoServices = errors.New("submit_booking: no services selected")

	// ErrIncompleteService возвращается, когда у услуги не заполнены обязательные поля
	ErrIncompleteService = errors.New("submit_booking: service selection is incomplete")

	// ErrMissingCustomerName возвращается, когда не заполнено имя клиента
	ErrMissingCustomerName = errors.New("submit_booking: customer name is missing")

	// ErrMissingCustomerEmail возвращается, когда не заполнен email клиента
	ErrMissingCustomerEmail = errors.New("submit_booking: customer email is missing")

	// ErrMissingDate возвращается, когда не выбрана дата
	ErrMissingDate = errors.New("submit_booking: date is missing")

	// ErrMissingTime возвращается, когда не выбрано время
	ErrMissingTime = errors.New("submit_booking: time is missing")

	// ErrMissingPaymentMethod возвращается, когда не выбран способ оплаты
	ErrMissingPaymentMethod = errors.New("submit_booking: payment method is missing")

	// ErrSubmissionFailed возвращается, когда удаленный API отклонил бронирование
	// Черновик при этом не изменяется, конвейер возвращается в idle
	ErrSubmissionFailed = errors.New("submit_booking: remote API rejected the booking")

	// ErrInternal возвращается при внутренних ошибках нормализации
	ErrInternal = errors.New("submit_booking: internal error")
)
