package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/AXB-BookingService/internal/api/handlers"
	"github.com/m04kA/AXB-BookingService/internal/service/bookings"
)

const (
	msgMissingPhone = "не указан телефон, ожидается ?phone="
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /bookings - Missing phone parameter")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.GetCustomerBookings(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /bookings - Failed to get customer bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings for phone", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
