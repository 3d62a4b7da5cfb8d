package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	submitBooking "github.com/m04kA/EL-BookingFlow/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound      = "session not found"
	msgNoServices           = "please select your services first"
	msgIncompleteService    = "your service selection is incomplete"
	msgMissingCustomerName  = "please enter your name"
	msgMissingCustomerEmail = "please enter your email"
	msgMissingDate          = "please pick a date"
	msgMissingTime          = "please pick a time"
	msgMissingPaymentMethod = "please choose a payment method"
	msgSubmissionInFlight   = "your booking is already being submitted, please wait"
	msgAlreadySubmitted     = "this booking has already been submitted"
	msgSubmissionFailed     = "we could not complete your booking, please try again"
)

type Handler struct {
	useCase  SubmitBookingUseCase
	sessions SessionManager
	logger   Logger
}

func NewHandler(useCase SubmitBookingUseCase, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	store, err := h.sessions.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/submit - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), store)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrNoServices):
			h.logger.Warn("POST /sessions/{id}/submit - No services: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgNoServices)

		case errors.Is(err, submitBooking.ErrIncompleteService):
			h.logger.Warn("POST /sessions/{id}/submit - Incomplete service: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgIncompleteService)

		case errors.Is(err, submitBooking.ErrMissingCustomerName):
			h.logger.Warn("POST /sessions/{id}/submit - Missing customer name: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgMissingCustomerName)

		case errors.Is(err, submitBooking.ErrMissingCustomerEmail):
			h.logger.Warn("POST /sessions/{id}/submit - Missing customer email: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgMissingCustomerEmail)

		case errors.Is(err, submitBooking.ErrMissingDate):
			h.logger.Warn("POST /sessions/{id}/submit - Missing date: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgMissingDate)

		case errors.Is(err, submitBooking.ErrMissingTime):
			h.logger.Warn("POST /sessions/{id}/submit - Missing time: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgMissingTime)

		case errors.Is(err, submitBooking.ErrMissingPaymentMethod):
			h.logger.Warn("POST /sessions/{id}/submit - Missing payment method: session_id=%s", sessionID)
			handlers.RespondUnprocessableEntity(w, msgMissingPaymentMethod)

		case errors.Is(err, draft.ErrSubmissionInFlight):
			h.logger.Warn("POST /sessions/{id}/submit - Submission already in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, draft.ErrAlreadySubmitted):
			h.logger.Warn("POST /sessions/{id}/submit - Already submitted: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgAlreadySubmitted)

		case errors.Is(err, submitBooking.ErrSubmissionFailed):
			h.logger.Error("POST /sessions/{id}/submit - Submission failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking submitted: session_id=%s, total=%.2f", sessionID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
