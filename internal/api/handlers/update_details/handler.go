package update_details

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	updateDetails "github.com/m04kA/EL-BookingFlow/internal/usecase/update_details"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgSessionNotFound      = "session not found"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgInvalidPaymentMethod = "unsupported payment method"
)

type Handler struct {
	useCase  UpdateDetailsUseCase
	sessions SessionManager
	logger   Logger
}

func NewHandler(useCase UpdateDetailsUseCase, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	store, err := h.sessions.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			h.logger.Warn("PATCH /sessions/{id}/details - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/details - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), store, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, updateDetails.ErrInvalidDate):
			h.logger.Warn("PATCH /sessions/{id}/details - Invalid date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateDetails.ErrInvalidPaymentMethod):
			h.logger.Warn("PATCH /sessions/{id}/details - Invalid payment method: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		default:
			h.logger.Error("PATCH /sessions/{id}/details - Failed to update details: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/details - Details updated: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromDraft(result.Draft))
}
