package select_services

import (
	"github.com/m04kA/EL-BookingFlow/internal/domain"
)

// Request модель запроса шага выбора услуг
// Все услуги выполняет один выбранный сотрудник
type Request struct {
	StaffID      string   // выбранный сотрудник
	ServiceTypes []string // выбранные типы услуг, порядок = порядок отображения
}

// Response модель ответа с резолвленными услугами черновика
type Response struct {
	Services []domain.ServiceSelection
}
