package get_bookings

import (
	"net/http"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/api/middleware"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	search := r.URL.Query().Get("search")

	bookings, err := h.service.ListBookings(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: admin_id=%s, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - %d bookings listed: admin_id=%s, search=%q", len(bookings), adminID, search)
	handlers.RespondJSON(w, http.StatusOK, &BookingsResponse{Bookings: bookings})
}
