package update_service

import (
	"github.com/provora/SchedulingService/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model. Услуга перезаписывается целиком.
type UpdateServiceRequest struct {
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
func (r *UpdateServiceRequest) ToServiceRequest(requesterID int64) *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		RequesterID:            requesterID,
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
