package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provora/SchedulingService/internal/domain"
	bookingRepo "github.com/provora/SchedulingService/internal/infra/storage/booking"
	"github.com/provora/SchedulingService/internal/integrations/notifier"
	"github.com/provora/SchedulingService/internal/service/bookings/models"
	"github.com/provora/SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type spyNotifier struct {
	events []notifier.BookingEvent
}

func (s *spyNotifier) NotifyBookingCancelled(event notifier.BookingEvent) {
	s.events = append(s.events, event)
}

type spyMetrics struct {
	cancelled int
}

func (s *spyMetrics) IncBookingCancelled() {
	s.cancelled++
}

// fakeBookingRepo is an in-memory repository mirroring the storage layer
// contract, including the ErrNotCancellable behavior of Cancel.
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByCustomer(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID == nil || *b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.ProviderID != nil && b.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeCancelled && b.Status != domain.StatusConfirmed {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, cancelledBy int64, reason *string) error {
	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusConfirmed {
		return bookingRepo.ErrNotCancellable
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledBy = &cancelledBy
	b.CancellationReason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              1,
		Reference:       "ref-1",
		ServiceID:       10,
		ProviderID:      100,
		CustomerID:      ptr.Ptr(int64(42)),
		BookingDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.DefaultPaymentStatus,
		CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

type fixture struct {
	svc      *Service
	repo     *fakeBookingRepo
	notifier *spyNotifier
	metrics  *spyMetrics
}

func newFixture(bookings ...*domain.Booking) *fixture {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	spy := &spyNotifier{}
	met := &spyMetrics{}
	return &fixture{
		svc:      NewService(repo, spy, met, nopLogger{}),
		repo:     repo,
		notifier: spy,
		metrics:  met,
	}
}

func TestGetByID_Customer(t *testing.T) {
	f := newFixture(confirmedBooking())

	resp, err := f.svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_Provider(t *testing.T) {
	f := newFixture(confirmedBooking())

	_, err := f.svc.GetByID(context.Background(), 1, 100)
	assert.NoError(t, err, "provider sees bookings of their services")
}

func TestGetByID_Forbidden(t *testing.T) {
	f := newFixture(confirmedBooking())

	_, err := f.svc.GetByID(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByID(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByCustomer(t *testing.T) {
	f := newFixture(confirmedBooking())

	reason := "планы изменились"
	err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		RequesterID:        42,
		CancellationReason: &reason,
	})
	require.NoError(t, err)

	stored := f.repo.bookings[1]
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	require.NotNil(t, stored.CancelledBy)
	assert.Equal(t, int64(42), *stored.CancelledBy)
	require.NotNil(t, stored.CancellationReason)
	assert.Equal(t, reason, *stored.CancellationReason)

	assert.Equal(t, 1, f.metrics.cancelled)
	assert.Len(t, f.notifier.events, 1)
}

func TestCancel_ByProvider(t *testing.T) {
	f := newFixture(confirmedBooking())

	err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{RequesterID: 100})
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, f.repo.bookings[1].Status)
}

func TestCancel_Forbidden(t *testing.T) {
	f := newFixture(confirmedBooking())

	err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{RequesterID: 77})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusConfirmed, f.repo.bookings[1].Status)
}

func TestCancel_Idempotent(t *testing.T) {
	f := newFixture(confirmedBooking())

	req := &models.CancelBookingRequest{RequesterID: 42}
	require.NoError(t, f.svc.Cancel(context.Background(), 1, req))

	updatedAt := f.repo.bookings[1].UpdatedAt

	// Second cancel succeeds without touching the row
	require.NoError(t, f.svc.Cancel(context.Background(), 1, req))
	assert.Equal(t, updatedAt, f.repo.bookings[1].UpdatedAt)

	// Counters and notifications fire only on the first transition
	assert.Equal(t, 1, f.metrics.cancelled)
	assert.Len(t, f.notifier.events, 1)
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture()

	err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{RequesterID: 42})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_OwnHistoryOnly(t *testing.T) {
	f := newFixture(confirmedBooking())

	_, err := f.svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		RequesterID: 77,
		CustomerID:  42,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := f.svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		RequesterID: 42,
		CustomerID:  42,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	f := newFixture(confirmedBooking())

	bad := "pending"
	_, err := f.svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		RequesterID: 42,
		CustomerID:  42,
		Status:      &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProviderBookings_OwnBookingsOnly(t *testing.T) {
	f := newFixture(confirmedBooking())

	_, err := f.svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		RequesterID: 42,
		ProviderID:  100,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := f.svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		RequesterID: 100,
		ProviderID:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}
