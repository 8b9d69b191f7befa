package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrServiceClosed возвращается, когда у услуги нет рабочего окна в этот день
	ErrServiceClosed = errors.New("create_booking: service is not available on this day")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке
	// слотов услуги (не кратно шагу или выходит за рабочее окно)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrOutsideBookingWindow возвращается, когда слот нарушает минимальный
	// или максимальный горизонт бронирования
	ErrOutsideBookingWindow = errors.New("create_booking: slot is outside the advance booking window")

	// ErrSlotNotAvailable возвращается, когда слот конфликтует с существующим
	// бронированием. Текст ошибки содержит запрошенные дату и время, чтобы
	// клиент мог сразу перезапросить доступность.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrContention возвращается, когда сериализуемая транзакция не прошла
	// после всех повторов. Это конкуренция за БД, а не занятый слот -
	// запрос можно повторить без перезапроса доступности.
	ErrContention = errors.New("create_booking: storage contention, retry the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
