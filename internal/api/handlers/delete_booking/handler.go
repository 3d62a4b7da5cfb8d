package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EL-BookingFlow/internal/api/handlers"
	"github.com/m04kA/EL-BookingFlow/internal/api/middleware"
	"github.com/m04kA/EL-BookingFlow/internal/service/admin"
)

const (
	msgMissingBookingID = "booking id is required"
	msgBookingNotFound  = "booking not found"
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

// Handle DELETE /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/bookings/{id} - Missing booking ID: admin_id=%s", adminID)
			handlers.RespondBadRequest(w, msgMissingBookingID)

		case errors.Is(err, admin.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking not found: admin_id=%s, booking_id=%s", adminID, bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: admin_id=%s, booking_id=%s, error=%v",
				adminID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted: admin_id=%s, booking_id=%s", adminID, bookingID)
	w.WriteHeader(http.StatusNoContent)
}
