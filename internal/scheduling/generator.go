package scheduling

import (
	"time"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/pkg/types"
)

// Generate строит упорядоченную по времени начала последовательность
// кандидатных слотов услуги на указанную дату.
//
// Слоты идут от начала рабочего окна с шагом duration + buffer; слот
// попадает в результат, только если его конец (start + duration) не
// выходит за конец окна. Слоты, начинающиеся раньше now + advanceBookingHours
// или позже now + maxAdvanceBookingHours, исключаются - они никогда не
// доступны, и дальше по конвейеру их можно не учитывать.
//
// Чистая функция от своих аргументов: никакого I/O, время передаётся явно.
// Выключенный день и окно короче длительности услуги дают пустой результат,
// не ошибку.
func Generate(svc *domain.ServiceDefinition, date time.Time, now time.Time) ([]domain.Slot, error) {
	window := svc.WeeklyAvailability.Window(date.Weekday())
	if window == nil {
		return []domain.Slot{}, nil
	}

	if svc.DurationMinutes <= 0 {
		return []domain.Slot{}, nil
	}

	windowStart, err := window.Start.Minutes()
	if err != nil {
		return nil, err
	}
	windowEnd, err := window.End.Minutes()
	if err != nil {
		return nil, err
	}

	floor := now.Add(time.Duration(svc.AdvanceBookingHours) * time.Hour)

	var ceiling time.Time
	if svc.HasMaxAdvanceLimit() {
		ceiling = now.Add(time.Duration(svc.MaxAdvanceBookingHours) * time.Hour)
	}

	step := svc.SlotStepMinutes()
	slots := make([]domain.Slot, 0)

	for start := windowStart; start+svc.DurationMinutes <= windowEnd; start += step {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromMinutes(start + svc.DurationMinutes)
		if err != nil {
			return nil, err
		}

		startAt, err := startTime.At(date)
		if err != nil {
			return nil, err
		}

		if startAt.Before(floor) {
			continue
		}
		if svc.HasMaxAdvanceLimit() && startAt.After(ceiling) {
			continue
		}

		slots = append(slots, domain.Slot{
			StartTime: startTime,
			EndTime:   endTime,
			Available: true,
		})
	}

	return slots, nil
}

// CandidateSlot восстанавливает слот из времени начала и длительности услуги.
// Используется в write-path, где клиент присылает только start_time.
func CandidateSlot(svc *domain.ServiceDefinition, start types.TimeString) (domain.Slot, error) {
	end, err := start.AddMinutes(svc.DurationMinutes)
	if err != nil {
		return domain.Slot{}, err
	}
	return domain.Slot{StartTime: start, EndTime: end, Available: true}, nil
}

// FitsGrid проверяет, что время начала лежит на сетке слотов услуги для
// данной даты: день включён, старт кратен шагу от начала окна, конец слота
// не выходит за конец окна.
func FitsGrid(svc *domain.ServiceDefinition, date time.Time, start types.TimeString) (bool, error) {
	window := svc.WeeklyAvailability.Window(date.Weekday())
	if window == nil {
		return false, nil
	}

	windowStart, err := window.Start.Minutes()
	if err != nil {
		return false, err
	}
	windowEnd, err := window.End.Minutes()
	if err != nil {
		return false, err
	}
	startMin, err := start.Minutes()
	if err != nil {
		return false, err
	}

	if startMin < windowStart {
		return false, nil
	}
	if (startMin-windowStart)%svc.SlotStepMinutes() != 0 {
		return false, nil
	}
	if startMin+svc.DurationMinutes > windowEnd {
		return false, nil
	}

	return true, nil
}

// WithinAdvanceWindow проверяет, что начало слота попадает в допустимый
// диапазон [now + advance, now + maxAdvance]
func WithinAdvanceWindow(svc *domain.ServiceDefinition, date time.Time, start types.TimeString, now time.Time) (bool, error) {
	startAt, err := start.At(date)
	if err != nil {
		return false, err
	}

	floor := now.Add(time.Duration(svc.AdvanceBookingHours) * time.Hour)
	if startAt.Before(floor) {
		return false, nil
	}

	if svc.HasMaxAdvanceLimit() {
		ceiling := now.Add(time.Duration(svc.MaxAdvanceBookingHours) * time.Hour)
		if startAt.After(ceiling) {
			return false, nil
		}
	}

	return true, nil
}
