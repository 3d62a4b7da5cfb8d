package get_staff

import (
	"net/http"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
)

const msgStaffUnavailable = "staff directory is temporarily unavailable"

type Handler struct {
	client StaffClient
	logger Logger
}

func NewHandler(client StaffClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	members, err := h.client.GetStaffDirectory(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - Failed to load staff directory: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgStaffUnavailable)
		return
	}

	h.logger.Info("GET /staff - Staff directory loaded: %d members", len(members))
	handlers.RespondJSON(w, http.StatusOK, FromStaffMembers(members))
}
