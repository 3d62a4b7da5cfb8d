package select_services

import "fmt"

// validateRequest валидирует входные данные шага выбора услуг
// Гейт шага: без сотрудника и хотя бы одной непустой услуги дальше нельзя
func validateRequest(req *Request) error {
	if req.StaffID == "" {
		return ErrNoBarberSelected
	}

	if len(req.ServiceTypes) == 0 {
		return ErrEmptyServices
	}

	for i, serviceType := range req.ServiceTypes {
		if serviceType == "" {
			return fmt.Errorf("%w: service #%d is not selected", ErrEmptyServices, i+1)
		}
	}

	return nil
}
