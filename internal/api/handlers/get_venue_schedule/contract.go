package get_venue_schedule

import (
	"context"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetVenueSchedule(ctx context.Context, date time.Time, includeInactive bool) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
