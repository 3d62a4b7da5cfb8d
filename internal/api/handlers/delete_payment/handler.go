package delete_payment

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
	msgPaymentNotFound  = "payment not found"
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

// Handle DELETE /api/v1/admin/payments/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.DeletePayment(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/payments/{id} - Missing booking ID: admin_id=%s", adminID)
			handlers.RespondBadRequest(w, msgMissingBookingID)

		case errors.Is(err, admin.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/payments/{id} - Payment not found: admin_id=%s, booking_id=%s", adminID, bookingID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		default:
			h.logger.Error("DELETE /admin/payments/{id} - Failed to delete payment: admin_id=%s, booking_id=%s, error=%v",
				adminID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/payments/{id} - Payment deleted: admin_id=%s, booking_id=%s", adminID, bookingID)
	w.WriteHeader(http.StatusNoContent)
}
