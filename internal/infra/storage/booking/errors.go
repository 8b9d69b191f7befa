package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается при нарушении уникального индекса на
	// (service_id, booking_date, start_time) для подтверждённых бронирований.
	// Страховка на случай, если два инсерта всё же проскочили проверку конфликтов.
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrNotCancellable возвращается, когда UPDATE отмены не затронул ни одной
	// строки: бронирование либо не существует, либо уже отменено
	ErrNotCancellable = errors.New("booking.repository: booking is not in a cancellable state")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
