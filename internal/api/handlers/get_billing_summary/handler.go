package get_billing_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	getBillingSummary "github.com/m04kA/EL-BookingFlow/internal/usecase/get_billing_summary"
)

const (
	msgSessionNotFound        = "session not found"
	msgNoServices             = "please select your services first"
	msgIncompleteServices     = "your service selection is incomplete"
	msgMissingCustomerDetails = "please fill in your name and email first"
	msgMissingSchedule        = "please pick a date and time first"
)

type Handler struct {
	useCase  GetBillingSummaryUseCase
	sessions SessionManager
	logger   Logger
}

func NewHandler(useCase GetBillingSummaryUseCase, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/billing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	store, err := h.sessions.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/billing - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/billing - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), store)
	if err != nil {
		switch {
		case errors.Is(err, getBillingSummary.ErrNoServices):
			h.logger.Warn("GET /sessions/{id}/billing - No services: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoServices)

		case errors.Is(err, getBillingSummary.ErrIncompleteServices):
			h.logger.Warn("GET /sessions/{id}/billing - Incomplete services: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgIncompleteServices)

		case errors.Is(err, getBillingSummary.ErrMissingCustomerDetails):
			h.logger.Warn("GET /sessions/{id}/billing - Missing customer details: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgMissingCustomerDetails)

		case errors.Is(err, getBillingSummary.ErrMissingSchedule):
			h.logger.Warn("GET /sessions/{id}/billing - Missing schedule: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgMissingSchedule)

		default:
			h.logger.Error("GET /sessions/{id}/billing - Failed to build summary: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/billing - Summary built: session_id=%s, total=%.2f", sessionID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
