package get_available_times

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/domain"
	"github.com/m04kA/EL-BookingFlow/internal/service/draft"
	getAvailableTimes "github.com/m04kA/EL-BookingFlow/internal/usecase/get_available_times"
	"github.com/m04kA/EL-BookingFlow/pkg/ptr"
)

const (
	msgSessionNotFound = "session not found"
	msgMissingDate     = "date query parameter is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase  GetAvailableTimesUseCase
	sessions SessionManager
	logger   Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	store, err := h.sessions.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, draft.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/available-times - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/available-times - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /sessions/{id}/available-times - Missing date: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrInvalidDate):
			h.logger.Warn("GET /sessions/{id}/available-times - Invalid date %q: session_id=%s", date, sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /sessions/{id}/available-times - Failed: session_id=%s, date=%s, error=%v",
				sessionID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Выбранная дата запоминается в черновике: шаг выбора времени
	// опирается на нее при проверке доступности
	store.Patch(r.Context(), domain.DraftPatch{Date: ptr.Ptr(result.Date)})

	h.logger.Info("GET /sessions/{id}/available-times - %d slots available: session_id=%s, date=%s",
		len(result.Times), sessionID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
