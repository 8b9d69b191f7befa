package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/provora/SchedulingService/internal/domain"
	bookingRepo "github.com/provora/SchedulingService/internal/infra/storage/booking"
	"github.com/provora/SchedulingService/internal/integrations/notifier"
	"github.com/provora/SchedulingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	notifier    NotifierClient
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifierClient,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Доступно клиенту бронирования и провайдеру услуги.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeManagedBy(requesterID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований пользователя.
// Пользователь может видеть только собственную историю.
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings of customer=%d for user=%d, status=%v",
		req.CustomerID, req.RequesterID, req.Status)

	if req.RequesterID != req.CustomerID {
		s.logger.Warn("GetCustomerBookings: user=%d requested history of customer=%d",
			req.RequesterID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetProviderBookings получает бронирования провайдера с фильтрацией по
// статусу и периоду. Доступно только самому провайдеру.
func (s *Service) GetProviderBookings(ctx context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetProviderBookings: fetching bookings of provider=%d for user=%d",
		req.ProviderID, req.RequesterID)

	if req.RequesterID != req.ProviderID {
		s.logger.Warn("GetProviderBookings: user=%d requested bookings of provider=%d",
			req.RequesterID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderBookings: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderBookings: fetched %d bookings for provider=%d", len(bookings), req.ProviderID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Отменить может клиент бронирования или провайдер услуги. Операция
// идемпотентна: повторная отмена уже отменённого бронирования - успешный
// no-op, updated_at при этом не меняется.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.RequesterID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeManagedBy(req.RequesterID) {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.RequesterID, bookingID)
		return ErrAccessDenied
	}

	// Идемпотентность: уже отменённое бронирование - успех без изменений
	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d is already cancelled, no-op", bookingID)
		return nil
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.RequesterID, req.CancellationReason); err != nil {
		// Параллельная отмена успела первой - для вызывающего это тот же успех
		if errors.Is(err, bookingRepo.ErrNotCancellable) {
			s.logger.Info("Cancel: booking id=%d was cancelled concurrently, no-op", bookingID)
			return nil
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	s.metrics.IncBookingCancelled()

	s.notifier.NotifyBookingCancelled(notifier.BookingEvent{
		BookingID:     booking.ID,
		Reference:     booking.Reference,
		ServiceID:     booking.ServiceID,
		ProviderID:    booking.ProviderID,
		CustomerID:    booking.CustomerID,
		CustomerEmail: booking.CustomerEmail,
		BookingDate:   booking.BookingDate.Format(domain.DateFormat),
		StartTime:     booking.StartTime.String(),
	})

	return nil
}
