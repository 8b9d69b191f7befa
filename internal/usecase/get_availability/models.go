package get_availability

import (
	"time"

	"github.com/provora/SchedulingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ServiceID int64         // ID услуги
	Date      time.Time     // Дата, на которую запрашивались слоты
	Slots     []domain.Slot // Свободные слоты в порядке возрастания времени начала
}
