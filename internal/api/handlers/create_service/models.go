package create_service

import (
	"github.com/provora/SchedulingService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model. Владелец берётся из заголовка
// аутентификации, а не из тела запроса.
type CreateServiceRequest struct {
	Name                   string                           `json:"name"`
	DurationMinutes        int                              `json:"durationMinutes"`
	Price                  float64                          `json:"price"`
	Currency               string                           `json:"currency"`
	WeeklyAvailability     models.WeeklyAvailabilityPayload `json:"weeklyAvailability"`
	BookingBufferMinutes   int                              `json:"bookingBufferMinutes"`
	AdvanceBookingHours    int                              `json:"advanceBookingHours"`
	MaxAdvanceBookingHours int                              `json:"maxAdvanceBookingHours"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(ownerID int64) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		OwnerID:                ownerID,
		Name:                   r.Name,
		DurationMinutes:        r.DurationMinutes,
		Price:                  r.Price,
		Currency:               r.Currency,
		WeeklyAvailability:     r.WeeklyAvailability,
		BookingBufferMinutes:   r.BookingBufferMinutes,
		AdvanceBookingHours:    r.AdvanceBookingHours,
		MaxAdvanceBookingHours: r.MaxAdvanceBookingHours,
	}
}
