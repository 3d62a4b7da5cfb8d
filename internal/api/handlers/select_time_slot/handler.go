package select_time_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	selectTimeSlot "github.com/m04kA/EL-BookingFlow/internal/usecase/select_time_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgNoDateSelected     = "please pick a date first"
	msgUnknownTimeSlot    = "unknown time slot"
	msgSlotTaken          = "this time slot is already booked, please choose another one"
)

type Handler struct {
	useCase  SelectTimeSlotUseCase
	sessions SessionManager
	logger   Logger
}

func NewHandler(useCase SelectTimeSlotUseCase, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	store, err := h.sessions.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/time - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req SelectTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), store, &selectTimeSlot.Request{TimeLabel: req.Time})
	if err != nil {
		switch {
		case errors.Is(err, selectTimeSlot.ErrNoDateSelected):
			h.logger.Warn("POST /sessions/{id}/time - No date selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, selectTimeSlot.ErrUnknownTimeSlot):
			h.logger.Warn("POST /sessions/{id}/time - Unknown time slot %q: session_id=%s", req.Time, sessionID)
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, selectTimeSlot.ErrSlotTaken):
			h.logger.Warn("POST /sessions/{id}/time - Slot taken: session_id=%s, time=%q", sessionID, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /sessions/{id}/time - Failed to select slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/time - Slot accepted: session_id=%s, date=%s, time=%q",
		sessionID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
