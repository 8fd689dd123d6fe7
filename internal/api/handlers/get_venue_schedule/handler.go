package get_venue_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/api/handlers"
	"github.com/m04kA/AXB-BookingService/internal/domain"
)

const (
	msgMissingDate = "не указана дата, ожидается ?date=YYYY-MM-DD"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/venue/schedule?date=YYYY-MM-DD&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venue/schedule - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /venue/schedule - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	schedule, err := h.service.GetVenueSchedule(r.Context(), date, includeInactive)
	if err != nil {
		h.logger.Error("GET /venue/schedule - Failed to build schedule for %s: %v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venue/schedule - Schedule retrieved: date=%s, bookings=%d",
		dateStr, len(schedule.Bookings))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
