package create_booking

import (
	"errors"
	"net/http"

	"github.com/provora/SchedulingService/internal/api/handlers"
	"github.com/provora/SchedulingService/internal/api/middleware"
	createBooking "github.com/provora/SchedulingService/internal/usecase/create_booking"
)

const (
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgServiceClosed        = "услуга не работает в выбранную дату"
	msgInvalidTimeSlot      = "некорректный временной слот"
	msgOutsideBookingWindow = "слот вне допустимого окна бронирования"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgContention           = "сервис перегружен, повторите запрос"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем requesterID из контекста (через middleware Auth)
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(requesterID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, service_id=%d, date=%s, time=%s",
				requesterID, req.ServiceID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: user_id=%d, service_id=%d", requesterID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, service_id=%d", requesterID, req.ServiceID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrServiceClosed):
			h.logger.Warn("POST /bookings - Service closed: user_id=%d, service_id=%d, date=%s",
				requesterID, req.ServiceID, req.BookingDate)
			handlers.RespondBadRequest(w, msgServiceClosed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, service_id=%d, time=%s",
				requesterID, req.ServiceID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrOutsideBookingWindow):
			h.logger.Warn("POST /bookings - Outside booking window: user_id=%d, service_id=%d, date=%s",
				requesterID, req.ServiceID, req.BookingDate)
			handlers.RespondBadRequest(w, msgOutsideBookingWindow)

		case errors.Is(err, createBooking.ErrContention):
			h.logger.Warn("POST /bookings - Storage contention: user_id=%d, service_id=%d", requesterID, req.ServiceID)
			handlers.RespondServiceUnavailable(w, msgContention)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", requesterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, service_id=%d, error=%v",
				requesterID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, user_id=%d",
		result.ID, result.Reference, requesterID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
