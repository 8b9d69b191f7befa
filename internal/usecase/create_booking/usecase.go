package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/provora/SchedulingService/internal/domain"
	bookingRepo "github.com/provora/SchedulingService/internal/infra/storage/booking"
	serviceRepo "github.com/provora/SchedulingService/internal/infra/storage/service"
	"github.com/provora/SchedulingService/internal/integrations/notifier"
	"github.com/provora/SchedulingService/internal/scheduling"
	"github.com/provora/SchedulingService/pkg/ptr"
	"github.com/provora/SchedulingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	notifier     NotifierClient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	notifierClient NotifierClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		notifier:     notifierClient,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
// с блокировкой бронирований дня (FOR UPDATE): результат advisory-запроса
// доступности, который клиент видел раньше, здесь не учитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: requester=%d, service=%d, date=%s, time=%s",
		req.RequesterID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Загружаем определение услуги
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 5. Проверяем, что в этот день у услуги есть рабочее окно
	if svc.WeeklyAvailability.Window(req.Date.Weekday()) == nil {
		uc.logger.Warn("CreateBooking: service id=%d has no window on %s", svc.ID, req.Date.Weekday())
		return nil, ErrServiceClosed
	}

	// 6. Время начала должно лежать на сетке слотов услуги
	onGrid, err := scheduling.FitsGrid(svc, req.Date, req.StartTime)
	if err != nil {
		uc.logger.Error("CreateBooking: grid check failed: %v", err)
		return nil, fmt.Errorf("%w: grid check: %v", ErrInternal, err)
	}
	if !onGrid {
		uc.logger.Warn("CreateBooking: start time %s is off the slot grid of service id=%d",
			req.StartTime, svc.ID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	// 7. Проверяем минимальный и максимальный горизонт бронирования
	inWindow, err := scheduling.WithinAdvanceWindow(svc, req.Date, req.StartTime, now)
	if err != nil {
		uc.logger.Error("CreateBooking: advance window check failed: %v", err)
		return nil, fmt.Errorf("%w: advance window check: %v", ErrInternal, err)
	}
	if !inWindow {
		uc.logger.Warn("CreateBooking: slot %s %s violates advance window of service id=%d (min=%dh, max=%dh)",
			req.Date.Format(domain.DateFormat), req.StartTime, svc.ID,
			svc.AdvanceBookingHours, svc.MaxAdvanceBookingHours)
		return nil, fmt.Errorf("%w: %s %s", ErrOutsideBookingWindow,
			req.Date.Format(domain.DateFormat), req.StartTime)
	}

	// 8. Восстанавливаем кандидатный слот из времени начала и длительности услуги
	candidate, err := scheduling.CandidateSlot(svc, req.StartTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to derive candidate slot: %v", err)
		return nil, fmt.Errorf("%w: derive candidate slot: %v", ErrInternal, err)
	}

	checker := scheduling.NewIntervalScan(svc.BookingBufferMinutes)

	// Переменная для хранения результата
	var result *domain.Booking

	// 9. Проверка конфликтов и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Загружаем подтверждённые бронирования услуги на эту дату (FOR UPDATE)
		filter := domain.BookingsFilter{
			ServiceID: ptr.Ptr(req.ServiceID),
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
			Status:    ptr.Ptr(domain.StatusConfirmed),
		}

		existing, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Кандидат должен быть свободен с учётом буфера
		free, err := checker.IsFree(candidate, existing)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
		}
		if !free {
			uc.logger.Warn("CreateBooking: slot %s %s of service id=%d is taken",
				req.Date.Format(domain.DateFormat), req.StartTime, svc.ID)
			return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable,
				req.Date.Format(domain.DateFormat), req.StartTime)
		}

		// 9.3. Собираем бронирование
		booking := &domain.Booking{
			Reference:       uuid.NewString(),
			ServiceID:       svc.ID,
			ProviderID:      svc.OwnerID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: svc.DurationMinutes,
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.DefaultPaymentStatus,
			Notes:           req.Notes,
		}

		// Гостевое бронирование может создать только владелец услуги
		if isGuestBooking(req) && svc.IsOwnedBy(req.RequesterID) {
			booking.CustomerName = req.GuestName
			booking.CustomerPhone = req.GuestPhone
			booking.CustomerEmail = req.GuestEmail
		} else {
			booking.CustomerID = ptr.Ptr(req.RequesterID)
			booking.CustomerName = req.GuestName
			booking.CustomerPhone = req.GuestPhone
			booking.CustomerEmail = req.GuestEmail
		}

		// 9.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс - последний рубеж против двойного бронирования
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s %s of service id=%d",
					req.Date.Format(domain.DateFormat), req.StartTime, svc.ID)
				return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable,
					req.Date.Format(domain.DateFormat), req.StartTime)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncSlotConflict()
			return nil, err
		}
		// Исчерпанные повторы сериализации - это конкуренция, не занятый слот
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: transaction contention for service id=%d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: %v", ErrContention, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s", result.ID, result.Reference)
	uc.metrics.IncBookingCreated()

	// 10. Уведомление - fire-and-forget, на результат не влияет
	uc.notifier.NotifyBookingCreated(notifier.BookingEvent{
		BookingID:     result.ID,
		Reference:     result.Reference,
		ServiceID:     result.ServiceID,
		ProviderID:    result.ProviderID,
		CustomerID:    result.CustomerID,
		CustomerEmail: result.CustomerEmail,
		BookingDate:   result.BookingDate.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
	})

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		ServiceID:       result.ServiceID,
		ProviderID:      result.ProviderID,
		CustomerID:      result.CustomerID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   result.PaymentStatus,
		GuestName:       result.CustomerName,
		GuestPhone:      result.CustomerPhone,
		GuestEmail:      result.CustomerEmail,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
