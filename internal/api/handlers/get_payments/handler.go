package get_payments

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

// Handle GET /api/v1/admin/payments?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, _ := middleware.GetAdminID(r.Context())
	search := r.URL.Query().Get("search")

	payments, err := h.service.ListPayments(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /admin/payments - Failed to list payments: admin_id=%s, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/payments - %d payments listed: admin_id=%s, search=%q", len(payments), adminID, search)
	handlers.RespondJSON(w, http.StatusOK, &PaymentsResponse{Payments: payments})
}
