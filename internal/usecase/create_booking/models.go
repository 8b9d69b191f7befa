package create_booking

import (
	"time"

	"github.com/provora/SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RequesterID int64            // Аутентифицированный пользователь, выполняющий запрос
	ServiceID   int64            // ID услуги
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала слота (например, "10:00")

	// Контакт гостя. Если запрос делает владелец услуги и контакт заполнен,
	// создаётся гостевое бронирование без customer_id.
	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	Notes *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	Reference       string           // Публичный код бронирования
	ServiceID       int64            // ID услуги
	ProviderID      int64            // ID провайдера
	CustomerID      *int64           // ID клиента (nil для гостевых бронирований)
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	PaymentStatus   string           // Платёжный статус (информационный)

	GuestName  *string
	GuestPhone *string
	GuestEmail *string
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
