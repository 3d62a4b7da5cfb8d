package domain

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	SlotLabelFormat = "3:04 PM"    // 12-hour display label
)

// SlotLabels фиксированный набор слотов рабочего дня
// Порядок слайса определяет порядок отображения
var SlotLabels = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
	"5:00 PM", "6:00 PM", "7:00 PM", "8:00 PM",
}

// IsKnownSlotLabel возвращает true, если label входит в фиксированный набор слотов
func IsKnownSlotLabel(label string) bool {
	for _, l := range SlotLabels {
		if l == label {
			return true
		}
	}
	return false
}
