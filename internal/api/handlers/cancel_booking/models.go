package cancel_booking

import (
	"github.com/provora/SchedulingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model. Тело опционально.
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(requesterID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		RequesterID:        requesterID,
		CancellationReason: r.CancellationReason,
	}
}
