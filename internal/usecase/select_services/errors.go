package select_services

import "errors"

var (
	// ErrNoBarberSelected возвращается, когда не выбран сотрудник
	ErrNoBarberSelected = errors.New("select_services: no barber selected")

	// ErrEmptyServices возвращается, когда не выбрано ни одной услуги
	// или среди выбранных есть пустая строка
	ErrEmptyServices = errors.New("select_services: service selection is empty")

	// ErrServiceUnavailable возвращается, когда каталог не знает услугу такого типа
	ErrServiceUnavailable = errors.New("select_services: service is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_services: internal error")
)
