package get_staff

import (
	"context"

	"github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
)

type StaffClient interface {
	GetStaffDirectory(ctx context.Context) ([]barbershop.StaffMember, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
