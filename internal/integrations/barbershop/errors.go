package barbershop

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("barbershop client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе удаленного API
	ErrInvalidResponse = errors.New("barbershop client: invalid response")

	// ErrServiceUnavailable возвращается, когда каталог не знает услугу такого типа
	ErrServiceUnavailable = errors.New("barbershop client: service type is not available")

	// ErrBookingNotFound возвращается, когда бронирование не найдено на удаленной стороне
	ErrBookingNotFound = errors.New("barbershop client: booking not found")

	// ErrSubmitRejected возвращается, когда удаленный API отклонил отправку бронирования
	ErrSubmitRejected = errors.New("barbershop client: booking submission rejected")
)
