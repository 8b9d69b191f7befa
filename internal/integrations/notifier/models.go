package notifier

// EventType тип события бронирования
type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования для сервиса уведомлений
type BookingEvent struct {
	Type          EventType `json:"type"`
	BookingID     int64     `json:"booking_id"`
	Reference     string    `json:"reference"`
	ServiceID     int64     `json:"service_id"`
	ProviderID    int64     `json:"provider_id"`
	CustomerID    *int64    `json:"customer_id,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	BookingDate   string    `json:"booking_date"` // YYYY-MM-DD
	StartTime     string    `json:"start_time"`   // HH:MM
}
