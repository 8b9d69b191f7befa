package get_availability

import (
	"context"
	"time"

	"github.com/provora/SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория определений услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error)
}

// ConflictChecker интерфейс резолвера конфликтов слотов
type ConflictChecker interface {
	Filter(slots []domain.Slot, existing []*domain.Booking) ([]domain.Slot, error)
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
