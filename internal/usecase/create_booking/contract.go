package create_booking

import (
	"context"
	"time"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория определений услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotifierClient интерфейс клиента уведомлений (fire-and-forget)
type NotifierClient interface {
	NotifyBookingCreated(event notifier.BookingEvent)
}

// Metrics интерфейс доменных счётчиков
type Metrics interface {
	IncBookingCreated()
	IncSlotConflict()
}

// NopMetrics используется, когда сбор метрик выключен
type NopMetrics struct{}

func (NopMetrics) IncBookingCreated() {}
func (NopMetrics) IncSlotConflict()  {}

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
