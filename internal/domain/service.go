package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/provora/SchedulingService/pkg/types"
)

// ErrInvalidWeeklyAvailability возвращается при некорректном jsonb расписания в БД
var ErrInvalidWeeklyAvailability = errors.New("domain: invalid weekly availability value")

// DayWindow рабочее окно одного дня недели.
// Отсутствие окна (nil в WeeklyAvailability) означает выходной день.
type DayWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate проверяет корректность окна: оба времени заданы и start < end
func (w *DayWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("window start %s must be before end %s", w.Start, w.End)
	}
	return nil
}

// WeeklyAvailability недельный шаблон рабочих часов услуги.
// Хранится в БД одной jsonb-колонкой.
type WeeklyAvailability struct {
	Monday    *DayWindow `json:"monday,omitempty"`
	Tuesday   *DayWindow `json:"tuesday,omitempty"`
	Wednesday *DayWindow `json:"wednesday,omitempty"`
	Thursday  *DayWindow `json:"thursday,omitempty"`
	Friday    *DayWindow `json:"friday,omitempty"`
	Saturday  *DayWindow `json:"saturday,omitempty"`
	Sunday    *DayWindow `json:"sunday,omitempty"`
}

// Window возвращает рабочее окно для дня недели (nil - день выключен)
func (a *WeeklyAvailability) Window(weekday time.Weekday) *DayWindow {
	switch weekday {
	case time.Monday:
		return a.Monday
	case time.Tuesday:
		return a.Tuesday
	case time.Wednesday:
		return a.Wednesday
	case time.Thursday:
		return a.Thursday
	case time.Friday:
		return a.Friday
	case time.Saturday:
		return a.Saturday
	case time.Sunday:
		return a.Sunday
	default:
		return nil
	}
}

// Validate проверяет все заданные окна недели
func (a *WeeklyAvailability) Validate() error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		window := a.Window(day)
		if window == nil {
			continue
		}
		if err := window.Validate(); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

// Value реализует driver.Valuer для записи jsonb
func (a WeeklyAvailability) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan реализует sql.Scanner для чтения jsonb
func (a *WeeklyAvailability) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = WeeklyAvailability{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidWeeklyAvailability, src)
	}
}

// ServiceDefinition определение бронируемой услуги провайдера
type ServiceDefinition struct {
	ID              int64
	OwnerID         int64
	Name            string
	DurationMinutes int
	Price           float64
	Currency        string

	WeeklyAvailability WeeklyAvailability

	// BookingBufferMinutes обязательный простой после каждого бронирования
	BookingBufferMinutes int

	// AdvanceBookingHours минимальное время от "сейчас" до начала слота
	AdvanceBookingHours int

	// MaxAdvanceBookingHours максимальный горизонт бронирования; 0 = без ограничения
	MaxAdvanceBookingHours int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotStepMinutes шаг сетки слотов: длительность услуги плюс буфер
func (s *ServiceDefinition) SlotStepMinutes() int {
	return s.DurationMinutes + s.BookingBufferMinutes
}

// IsOwnedBy возвращает true, если услуга принадлежит пользователю
func (s *ServiceDefinition) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

// HasMaxAdvanceLimit возвращает true, если задан горизонт бронирования
func (s *ServiceDefinition) HasMaxAdvanceLimit() bool {
	return s.MaxAdvanceBookingHours > 0
}
