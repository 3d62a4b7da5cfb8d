package select_time_slot

import "errors"

var (
	// ErrNoDateSelected возвращается, когда в черновике еще нет даты
	ErrNoDateSelected = errors.New("select_time_slot: no date selected")

	// ErrUnknownTimeSlot возвращается для label вне фиксированного набора слотов
	ErrUnknownTimeSlot = errors.New("select_time_slot: unknown time slot")

	// ErrSlotTaken возвращается, когда удаленный API отклонил слот как занятый
	// Блокирует только выбор времени: прежнее значение в черновике сохраняется
	ErrSlotTaken = errors.New("select_time_slot: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_time_slot: internal error")
)
