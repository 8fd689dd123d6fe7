package bookings

import (
	"context"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	GetClaimsByBookingID(ctx context.Context, bookingID int64) ([]domain.ResourceClaim, error)
}

// ResourceRepository интерфейс репозитория ресурсов площадки
type ResourceRepository interface {
	List(ctx context.Context) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
