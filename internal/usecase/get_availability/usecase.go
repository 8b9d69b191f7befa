package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/provora/SchedulingService/internal/domain"
	serviceRepo "github.com/provora/SchedulingService/internal/infra/storage/service"
	"github.com/provora/SchedulingService/internal/scheduling"
	"github.com/provora/SchedulingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов.
//
// Read path: без транзакций и блокировок. Ответ - advisory snapshot,
// он никогда не является резервацией: авторитетная проверка выполняется
// заново внутри create_booking.
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает свободные слоты услуги на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Загружаем определение услуги
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Генерируем кандидатные слоты. Выключенный день и прошедшие даты
	// дают пустой список, не ошибку.
	now := uc.timeProvider.Now()
	candidates, err := scheduling.Generate(svc, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("GetAvailability: no candidate slots for service=%d on %s",
			req.ServiceID, req.Date.Format(domain.DateFormat))
		return &Response{ServiceID: req.ServiceID, Date: req.Date, Slots: []domain.Slot{}}, nil
	}

	// 4. Загружаем подтверждённые бронирования услуги на эту дату (без блокировки)
	filter := domain.BookingsFilter{
		ServiceID: ptr.Ptr(req.ServiceID),
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
		Status:    ptr.Ptr(domain.StatusConfirmed),
	}

	existing, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Отсекаем конфликтующие слоты
	checker := scheduling.NewIntervalScan(svc.BookingBufferMinutes)
	free, err := checker.Filter(candidates, existing)
	if err != nil {
		uc.logger.Error("GetAvailability: conflict filtering failed: %v", err)
		return nil, fmt.Errorf("%w: conflict filtering: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d of %d slots free for service=%d on %s",
		len(free), len(candidates), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     free,
	}, nil
}
