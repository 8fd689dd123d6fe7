package get_blocked_starts

import (
	"context"
	"time"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	List(ctx context.Context) ([]domain.Resource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveClaimsByDate(ctx context.Context, date time.Time) ([]domain.ResourceClaim, error)
}

// RulesRepository интерфейс репозитория blackout-окон и буферов
type RulesRepository interface {
	ListBlackoutsByDate(ctx context.Context, date time.Time) ([]domain.BlackoutRule, error)
	ListBuffers(ctx context.Context) ([]domain.BufferRule, error)
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
