package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provora/SchedulingService/internal/domain"
	serviceRepo "github.com/provora/SchedulingService/internal/infra/storage/service"
)

// 2026-09-14 is a Monday
var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type fakeServiceRepo struct {
	services map[int64]*domain.ServiceDefinition
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.ServiceDefinition, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.ServiceID != nil && b.ServiceID != *filter.ServiceID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func newUseCase(svc *domain.ServiceDefinition, bookings []*domain.Booking, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeServiceRepo{services: map[int64]*domain.ServiceDefinition{svc.ID: svc}},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.String()
	}
	return starts
}

func TestExecute_BookedSlotRemoved(t *testing.T) {
	// 30 min service in a 09:00-10:00 window, no buffer: slots are
	// 09:00 and 09:30. Booking 09:00 leaves only 09:30.
	svc := &domain.ServiceDefinition{
		ID:              1,
		OwnerID:         100,
		DurationMinutes: 30,
		WeeklyAvailability: domain.WeeklyAvailability{
			Monday: &domain.DayWindow{Start: "09:00", End: "10:00"},
		},
	}
	booked := []*domain.Booking{{
		ID:              1,
		ServiceID:       1,
		BookingDate:     monday,
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}}

	uc := newUseCase(svc, booked, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:30"}, slotStarts(resp.Slots))
}

func TestExecute_NoBookings(t *testing.T) {
	svc := &domain.ServiceDefinition{
		ID:              1,
		OwnerID:         100,
		DurationMinutes: 60,
		WeeklyAvailability: domain.WeeklyAvailability{
			Monday: &domain.DayWindow{Start: "09:00", End: "17:00"},
		},
		BookingBufferMinutes: 15,
	}

	uc := newUseCase(svc, nil, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"09:00", "10:15", "11:30", "12:45", "14:00", "15:15"},
		slotStarts(resp.Slots))
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	svc := &domain.ServiceDefinition{
		ID:              1,
		OwnerID:         100,
		DurationMinutes: 30,
		WeeklyAvailability: domain.WeeklyAvailability{
			Monday: &domain.DayWindow{Start: "09:00", End: "10:00"},
		},
	}
	cancelled := []*domain.Booking{{
		ID:              1,
		ServiceID:       1,
		BookingDate:     monday,
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          domain.StatusCancelled,
	}}

	uc := newUseCase(svc, cancelled, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30"}, slotStarts(resp.Slots))
}

func TestExecute_DisabledDay(t *testing.T) {
	svc := &domain.ServiceDefinition{
		ID:              1,
		OwnerID:         100,
		DurationMinutes: 60,
		WeeklyAvailability: domain.WeeklyAvailability{
			Monday: &domain.DayWindow{Start: "09:00", End: "17:00"},
		},
	}

	uc := newUseCase(svc, nil, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	sunday := monday.AddDate(0, 0, -1)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: sunday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	svc := &domain.ServiceDefinition{ID: 1, DurationMinutes: 60}
	uc := newUseCase(svc, nil, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 999, Date: monday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	svc := &domain.ServiceDefinition{ID: 1, DurationMinutes: 60}
	uc := newUseCase(svc, nil, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
