package models

import (
	"time"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/pkg/types"
)

// DayWindowPayload рабочее окно дня в запросах и ответах
type DayWindowPayload struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// WeeklyAvailabilityPayload недельное расписание в запросах и ответах.
// Отсутствующий день - выходной.
type WeeklyAvailabilityPayload struct {
	Monday    *DayWindowPayload `json:"monday,omitempty"`
	Tuesday   *DayWindowPayload `json:"tuesday,omitempty"`
	Wednesday *DayWindowPayload `json:"wednesday,omitempty"`
	Thursday  *DayWindowPayload `json:"thursday,omitempty"`
	Friday    *DayWindowPayload `json:"friday,omitempty"`
	Saturday  *DayWindowPayload `json:"saturday,omitempty"`
	Sunday    *DayWindowPayload `json:"sunday,omitempty"`
}

// CreateServiceRequest запрос на создание определения услуги
type CreateServiceRequest struct {
	OwnerID                int64                     `json:"ownerId"`
	Name                   string                    `json:"name"`
	DurationMinutes        int                       `json:"durationMinutes"`
	Price                  float64                   `json:"price"`
	Currency               string                    `json:"currency"`
	WeeklyAvailability     WeeklyAvailabilityPayload `json:"weeklyAvailability"`
	BookingBufferMinutes   int                       `json:"bookingBufferMinutes"`
	AdvanceBookingHours    int                       `json:"advanceBookingHours"`
	MaxAdvanceBookingHours int                       `json:"maxAdvanceBookingHours"`
}

// UpdateServiceRequest запрос на обновление определения услуги
type UpdateServiceRequest struct {
	RequesterID            int64                     `json:"requesterId"`
	Name                   string                    `json:"name"`
	DurationMinutes        int                       `json:"durationMinutes"`
	Price                  float64                   `json:"price"`
	Currency               string                    `json:"currency"`
	WeeklyAvailability     WeeklyAvailabilityPayload `json:"weeklyAvailability"`
	BookingBufferMinutes   int                       `json:"bookingBufferMinutes"`
	AdvanceBookingHours    int                       `json:"advanceBookingHours"`
	MaxAdvanceBookingHours int                       `json:"maxAdvanceBookingHours"`
}

// ServiceResponse определение услуги в ответе сервиса
type ServiceResponse struct {
	ID                     int64                     `json:"id"`
	OwnerID                int64                     `json:"ownerId"`
	Name                   string                    `json:"name"`
	DurationMinutes        int                       `json:"durationMinutes"`
	Price                  float64                   `json:"price"`
	Currency               string                    `json:"currency"`
	WeeklyAvailability     WeeklyAvailabilityPayload `json:"weeklyAvailability"`
	BookingBufferMinutes   int                       `json:"bookingBufferMinutes"`
	AdvanceBookingHours    int                       `json:"advanceBookingHours"`
	MaxAdvanceBookingHours int                       `json:"maxAdvanceBookingHours"`
	CreatedAt              string                    `json:"createdAt"`
	UpdatedAt              string                    `json:"updatedAt"`
}

// ServiceListResponse список услуг провайдера
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// ToDomainAvailability конвертирует payload в domain расписание
func (p *WeeklyAvailabilityPayload) ToDomainAvailability() (domain.WeeklyAvailability, error) {
	result := domain.WeeklyAvailability{}

	set := func(dst **domain.DayWindow, src *DayWindowPayload) error {
		if src == nil {
			return nil
		}
		start, err := types.NewTimeStringFromString(src.Start)
		if err != nil {
			return err
		}
		end, err := types.NewTimeStringFromString(src.End)
		if err != nil {
			return err
		}
		*dst = &domain.DayWindow{Start: start, End: end}
		return nil
	}

	if err := set(&result.Monday, p.Monday); err != nil {
		return result, err
	}
	if err := set(&result.Tuesday, p.Tuesday); err != nil {
		return result, err
	}
	if err := set(&result.Wednesday, p.Wednesday); err != nil {
		return result, err
	}
	if err := set(&result.Thursday, p.Thursday); err != nil {
		return result, err
	}
	if err := set(&result.Friday, p.Friday); err != nil {
		return result, err
	}
	if err := set(&result.Saturday, p.Saturday); err != nil {
		return result, err
	}
	if err := set(&result.Sunday, p.Sunday); err != nil {
		return result, err
	}

	return result, nil
}

// FromDomainAvailability конвертирует domain расписание в payload
func FromDomainAvailability(a domain.WeeklyAvailability) WeeklyAvailabilityPayload {
	conv := func(w *domain.DayWindow) *DayWindowPayload {
		if w == nil {
			return nil
		}
		return &DayWindowPayload{Start: w.Start.String(), End: w.End.String()}
	}

	return WeeklyAvailabilityPayload{
		Monday:    conv(a.Monday),
		Tuesday:   conv(a.Tuesday),
		Wednesday: conv(a.Wednesday),
		Thursday:  conv(a.Thursday),
		Friday:    conv(a.Friday),
		Saturday:  conv(a.Saturday),
		Sunday:    conv(a.Sunday),
	}
}

// FromDomainService конвертирует domain услугу в ответ сервиса
func FromDomainService(svc *domain.ServiceDefinition) *ServiceResponse {
	return &ServiceResponse{
		ID:                     svc.ID,
		OwnerID:                svc.OwnerID,
		Name:                   svc.Name,
		DurationMinutes:        svc.DurationMinutes,
		Price:                  svc.Price,
		Currency:               svc.Currency,
		WeeklyAvailability:     FromDomainAvailability(svc.WeeklyAvailability),
		BookingBufferMinutes:   svc.BookingBufferMinutes,
		AdvanceBookingHours:    svc.AdvanceBookingHours,
		MaxAdvanceBookingHours: svc.MaxAdvanceBookingHours,
		CreatedAt:              svc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              svc.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainServiceList конвертирует список domain услуг
func FromDomainServiceList(services []*domain.ServiceDefinition) *ServiceListResponse {
	result := make([]*ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = FromDomainService(svc)
	}
	return &ServiceListResponse{Services: result, Total: len(result)}
}
