package domain

import (
	"time"

	"github.com/provora/SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed бронирование создано и подтверждено синхронно
	StatusConfirmed BookingStatus = "confirmed"

	// StatusCancelled бронирование отменено; возврата из этого статуса нет
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed or cancelled booking of a service slot
type Booking struct {
	ID         int64
	Reference  string // публичный код бронирования (uuid), возвращается клиенту
	ServiceID  int64
	ProviderID int64

	// CustomerID nil для гостевых бронирований, созданных провайдером
	CustomerID    *int64
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// PaymentStatus информационное поле, которым владеет платёжный сервис.
	// Движок расписания его не интерпретирует.
	PaymentStatus string

	Notes *string

	CancelledBy        *int64
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// EndTime возвращает время окончания бронирования (start + duration)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// BelongsToCustomer returns true if the booking was made by the given user
func (b *Booking) BelongsToCustomer(userID int64) bool {
	return b.CustomerID != nil && *b.CustomerID == userID
}

// CanBeManagedBy returns true if the user is the booking's customer or the
// provider of the booked service
func (b *Booking) CanBeManagedBy(userID int64) bool {
	return b.BelongsToCustomer(userID) || b.ProviderID == userID
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ServiceID        *int64         // Фильтр по услуге (обязателен для write-path)
	ProviderID       *int64         // Фильтр по провайдеру
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

// IsSingleDay возвращает true, если фильтр ограничен одной датой
func (f *BookingsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
