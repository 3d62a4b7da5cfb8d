package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/EL-BookingFlow/pkg/types"
)

// NormalizeSlotTime приводит слот к каноническому 24-часовому виду "HH:MM"
// Принимает как 12-часовой display label ("1:00 PM"), так и уже
// нормализованное время ("13:00").
//
// Единственная точка нормализации времени: используется и проверкой
// доступности, и отправкой бронирования. Расхождение форматов между этими
// двумя вызовами приводило бы к слоту, прошедшему проверку, но отклоненному
// при сохранении
func NormalizeSlotTime(label string) (types.TimeString, error) {
	if parsed, err := time.Parse(SlotLabelFormat, label); err == nil {
		return types.NewTimeString(parsed), nil
	}

	ts, err := types.NewTimeStringFromString(label)
	if err != nil {
		return "", fmt.Errorf("unrecognized time label %q: %v", label, err)
	}
	return ts, nil
}

// NormalizeDate приводит дату к каноническому виду "YYYY-MM-DD"
// Принимает как ISO дату, так и полный RFC3339 timestamp
func NormalizeDate(s string) (string, error) {
	if parsed, err := time.Parse(DateFormat, s); err == nil {
		return parsed.Format(DateFormat), nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed.Format(DateFormat), nil
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}
