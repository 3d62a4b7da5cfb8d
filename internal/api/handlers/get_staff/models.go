package get_staff

import "github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"

// StaffResponse HTTP response model
type StaffResponse struct {
	Staff []StaffMemberView `json:"staff"`
}

// StaffMemberView сотрудник в ответе справочника
type StaffMemberView struct {
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
}

// FromStaffMembers конвертирует записи удаленного API в HTTP response
func FromStaffMembers(members []barbershop.StaffMember) *StaffResponse {
	views := make([]StaffMemberView, 0, len(members))
	for _, m := range members {
		views = append(views, StaffMemberView{
			StaffID:   m.StaffID,
			StaffName: m.StaffName,
		})
	}
	return &StaffResponse{Staff: views}
}
