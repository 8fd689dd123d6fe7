package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/internal/integrations/notify"
	"github.com/m04kA/AXB-BookingService/internal/integrations/payments"
	"github.com/m04kA/AXB-BookingService/internal/integrations/waiver"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateClaim(ctx context.Context, claim *domain.ResourceClaim) (*domain.ResourceClaim, error)
	GetActiveClaimsByDate(ctx context.Context, date time.Time) ([]domain.ResourceClaim, error)
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
	CreateCharge(ctx context.Context, amount float64, metadata map[string]string) (*payments.Charge, error)
	RefundCharge(ctx context.Context, chargeID string) error
}

// WaiverClient интерфейс клиента сервиса вейверов
type WaiverClient interface {
	CreateSigningLink(ctx context.Context, bookingID int64, email *string) (*waiver.SigningLink, error)
}

// NotifyPublisher интерфейс публикации событий бронирования
type NotifyPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event notify.BookingConfirmedEvent) error
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
