package start_session

import (
	"net/http"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
)

type Handler struct {
	manager SessionManager
	logger  Logger
}

func NewHandler(manager SessionManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	store := h.manager.CreateSession(r.Context())

	h.logger.Info("POST /sessions - Session created: session_id=%s", store.SessionID())
	handlers.RespondJSON(w, http.StatusCreated, FromDraft(store.SessionID(), store.Get()))
}
