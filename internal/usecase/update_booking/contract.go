package update_booking

import (
	"context"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateSchedule(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	UpdateNotes(ctx context.Context, id int64, notes *string) error
	CreateClaim(ctx context.Context, claim *domain.ResourceClaim) (*domain.ResourceClaim, error)
	GetActiveClaimsByDate(ctx context.Context, date time.Time) ([]domain.ResourceClaim, error)
	DeleteClaimsByBookingID(ctx context.Context, bookingID int64) error
	UpdateClaimResource(ctx context.Context, claimID, resourceID int64) error
}

// ResourceRepository интерфейс репозитория ресурсов площадки
type ResourceRepository interface {
	List(ctx context.Context) ([]domain.Resource, error)
}

// RulesRepository интерфейс репозитория правил расписания
type RulesRepository interface {
	ListBlackoutsByDate(ctx context.Context, date time.Time) ([]domain.BlackoutRule, error)
	ListBuffers(ctx context.Context) ([]domain.BufferRule, error)
}

// PaymentsClient интерфейс клиента платёжного сервиса
type PaymentsClient interface {
	RefundCharge(ctx context.Context, chargeID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
