package draft

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("draft: session not found")

	// ErrSubmissionInFlight возвращается при попытке повторной отправки,
	// пока предыдущая еще выполняется
	ErrSubmissionInFlight = errors.New("draft: submission already in flight")

	// ErrAlreadySubmitted возвращается при попытке отправки после успешного завершения
	ErrAlreadySubmitted = errors.New("draft: booking already submitted")
)
