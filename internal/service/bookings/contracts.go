package bookings

import (
	"context"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, cancelledBy int64, reason *string) error
}

// NotifierClient интерфейс клиента уведомлений (fire-and-forget)
type NotifierClient interface {
	NotifyBookingCancelled(event notifier.BookingEvent)
}

// Metrics интерфейс доменных счётчиков
type Metrics interface {
	IncBookingCancelled()
}

// NopMetrics используется, когда сбор метрик выключен
type NopMetrics struct{}

func (NopMetrics) IncBookingCancelled() {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
