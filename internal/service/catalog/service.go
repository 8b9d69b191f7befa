package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/provora/SchedulingService/internal/domain"
	serviceRepo "github.com/provora/SchedulingService/internal/infra/storage/service"
	"github.com/provora/SchedulingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create создает определение услуги. Владельцем становится вызывающий.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %q for owner=%d", req.Name, req.OwnerID)

	svc, err := s.buildDefinition(req.OwnerID, req.Name, req.DurationMinutes, req.Price, req.Currency,
		req.WeeklyAvailability, req.BookingBufferMinutes, req.AdvanceBookingHours, req.MaxAdvanceBookingHours)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает определение услуги. Публичная операция.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// GetByOwner получает каталог услуг провайдера. Публичная операция.
func (s *Service) GetByOwner(ctx context.Context, ownerID int64) (*models.ServiceListResponse, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	services, err := s.serviceRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Update обновляет определение услуги. Доступно только владельцу.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d by user=%d", id, req.RequesterID)

	existing, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !existing.IsOwnedBy(req.RequesterID) {
		s.logger.Warn("Update: user=%d is not the owner of service id=%d", req.RequesterID, id)
		return nil, ErrAccessDenied
	}

	svc, err := s.buildDefinition(existing.OwnerID, req.Name, req.DurationMinutes, req.Price, req.Currency,
		req.WeeklyAvailability, req.BookingBufferMinutes, req.AdvanceBookingHours, req.MaxAdvanceBookingHours)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}
	svc.ID = existing.ID
	svc.CreatedAt = existing.CreatedAt

	updated, err := s.serviceRepo.Update(ctx, svc)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", updated.ID)
	return models.FromDomainService(updated), nil
}

// buildDefinition валидирует поля и собирает domain.ServiceDefinition
func (s *Service) buildDefinition(
	ownerID int64,
	name string,
	durationMinutes int,
	price float64,
	currency string,
	availability models.WeeklyAvailabilityPayload,
	bufferMinutes, advanceHours, maxAdvanceHours int,
) (*domain.ServiceDefinition, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if name == "" || len(name) > domain.MaxServiceNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be within [%d, %d]",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if bufferMinutes < domain.MinBufferMinutes || bufferMinutes > domain.MaxBufferMinutes {
		return nil, fmt.Errorf("%w: bookingBufferMinutes must be within [%d, %d]",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if advanceHours < domain.MinAdvanceBookingHours || advanceHours > domain.MaxAdvanceBookingHoursCap {
		return nil, fmt.Errorf("%w: advanceBookingHours must be within [%d, %d]",
			ErrInvalidInput, domain.MinAdvanceBookingHours, domain.MaxAdvanceBookingHoursCap)
	}
	if maxAdvanceHours < 0 || maxAdvanceHours > domain.MaxAdvanceBookingHoursCap {
		return nil, fmt.Errorf("%w: maxAdvanceBookingHours must be within [0, %d]",
			ErrInvalidInput, domain.MaxAdvanceBookingHoursCap)
	}
	if maxAdvanceHours > 0 && maxAdvanceHours < advanceHours {
		return nil, fmt.Errorf("%w: maxAdvanceBookingHours must not be less than advanceBookingHours", ErrInvalidInput)
	}

	if currency == "" {
		currency = domain.DefaultCurrency
	}

	weekly, err := availability.ToDomainAvailability()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid weekly availability: %v", ErrInvalidInput, err)
	}
	if err := weekly.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid weekly availability: %v", ErrInvalidInput, err)
	}

	return &domain.ServiceDefinition{
		OwnerID:                ownerID,
		Name:                   name,
		DurationMinutes:        durationMinutes,
		Price:                  price,
		Currency:               currency,
		WeeklyAvailability:     weekly,
		BookingBufferMinutes:   bufferMinutes,
		AdvanceBookingHours:    advanceHours,
		MaxAdvanceBookingHours: maxAdvanceHours,
	}, nil
}
