package scheduling

import (
	"github.com/provora/SchedulingService/internal/domain"
)

// ConflictChecker отсекает слоты, пересекающиеся с существующими
// бронированиями. Интерфейс позволяет заменить линейный скан на
// interval tree, не трогая вызывающий код.
type ConflictChecker interface {
	// Filter возвращает слоты, не конфликтующие ни с одним бронированием.
	// Порядок входа сохраняется.
	Filter(slots []domain.Slot, existing []*domain.Booking) ([]domain.Slot, error)

	// IsFree проверяет один кандидатный слот
	IsFree(slot domain.Slot, existing []*domain.Booking) (bool, error)
}

// IntervalScan линейный резолвер конфликтов: O(слоты x бронирования).
// На масштабе одного дня одной услуги этого достаточно.
//
// Буфер применяется симметрично к обоим интервалам: два интервала
// конфликтуют, если [a.start, a.end+buffer) пересекается с
// [b.start, b.end+buffer). Так более позднее бронирование не может
// начаться внутри паузы, требуемой после более раннего.
type IntervalScan struct {
	bufferMinutes int
}

// NewIntervalScan создает резолвер с буфером услуги
func NewIntervalScan(bufferMinutes int) *IntervalScan {
	return &IntervalScan{bufferMinutes: bufferMinutes}
}

// Filter возвращает слоты, не конфликтующие ни с одним подтверждённым бронированием
func (c *IntervalScan) Filter(slots []domain.Slot, existing []*domain.Booking) ([]domain.Slot, error) {
	free := make([]domain.Slot, 0, len(slots))

	for _, slot := range slots {
		ok, err := c.IsFree(slot, existing)
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, slot)
		}
	}

	return free, nil
}

// IsFree возвращает true, если слот не пересекается ни с одним
// подтверждённым бронированием
func (c *IntervalScan) IsFree(slot domain.Slot, existing []*domain.Booking) (bool, error) {
	slotStart, err := slot.StartTime.Minutes()
	if err != nil {
		return false, err
	}
	slotEnd, err := slot.EndTime.Minutes()
	if err != nil {
		return false, err
	}

	for _, booking := range existing {
		// Отменённые бронирования слот не занимают
		if !booking.IsConfirmed() {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			return false, err
		}
		bookingEnd := bookingStart + booking.DurationMinutes

		if overlaps(slotStart, slotEnd, bookingStart, bookingEnd, c.bufferMinutes) {
			return false, nil
		}
	}

	return true, nil
}

// overlaps проверяет пересечение буферизованных интервалов.
// Строгие неравенства: интервалы, граничащие точно в конце буфера,
// не считаются пересекающимися.
func overlaps(aStart, aEnd, bStart, bEnd, buffer int) bool {
	return aStart < bEnd+buffer && bStart < aEnd+buffer
}
