package select_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	selectServices "github.com/m04kA/EL-BookingFlow/internal/usecase/select_services"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgNoBarberSelected   = "please select a barber first"
	msgEmptyServices      = "please select at least one service"
	msgServiceUnavailable = "one of the selected services is not available"
)

type Handler struct {
	useCase  SelectServicesUseCase
	sessions SessionManager
	logger   Logger
}

func NewHandler(useCase SelectServicesUseCase, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	store, err := h.sessions.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/services - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/services - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req SelectServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), store, req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, selectServices.ErrNoBarberSelected):
			h.logger.Warn("POST /sessions/{id}/services - No barber selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoBarberSelected)

		case errors.Is(err, selectServices.ErrEmptyServices):
			h.logger.Warn("POST /sessions/{id}/services - Empty services: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyServices)

		case errors.Is(err, selectServices.ErrServiceUnavailable):
			h.logger.Warn("POST /sessions/{id}/services - Service unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondUnprocessableEntity(w, msgServiceUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/services - Failed to select services: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/services - Services selected: session_id=%s, count=%d",
		sessionID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
