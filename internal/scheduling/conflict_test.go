package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/pkg/types"
)

func confirmedBooking(start types.TimeString, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              1,
		ServiceID:       1,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestIsFree_NoBuffer(t *testing.T) {
	checker := NewIntervalScan(0)
	existing := []*domain.Booking{confirmedBooking("10:00", 60)}

	tests := []struct {
		name string
		slot domain.Slot
		want bool
	}{
		{name: "identical interval", slot: domain.Slot{StartTime: "10:00", EndTime: "11:00"}, want: false},
		{name: "starts inside", slot: domain.Slot{StartTime: "10:30", EndTime: "11:30"}, want: false},
		{name: "ends inside", slot: domain.Slot{StartTime: "09:30", EndTime: "10:30"}, want: false},
		{name: "touching before", slot: domain.Slot{StartTime: "09:00", EndTime: "10:00"}, want: true},
		{name: "touching after", slot: domain.Slot{StartTime: "11:00", EndTime: "12:00"}, want: true},
		{name: "disjoint", slot: domain.Slot{StartTime: "13:00", EndTime: "14:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := checker.IsFree(tt.slot, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, free)
		})
	}
}

func TestIsFree_WithBuffer(t *testing.T) {
	// 15 min buffer: a booking at 10:00-11:00 blocks starts before 11:15
	checker := NewIntervalScan(15)
	existing := []*domain.Booking{confirmedBooking("10:00", 60)}

	tests := []struct {
		name string
		slot domain.Slot
		want bool
	}{
		{name: "right after booking", slot: domain.Slot{StartTime: "11:00", EndTime: "12:00"}, want: false},
		{name: "inside the buffer", slot: domain.Slot{StartTime: "11:10", EndTime: "12:10"}, want: false},
		{name: "at buffer boundary", slot: domain.Slot{StartTime: "11:15", EndTime: "12:15"}, want: true},
		{name: "slot buffer reaches booking", slot: domain.Slot{StartTime: "08:50", EndTime: "09:50"}, want: false},
		{name: "slot ends at booking start minus buffer", slot: domain.Slot{StartTime: "08:45", EndTime: "09:45"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := checker.IsFree(tt.slot, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, free)
		})
	}
}

func TestIsFree_CancelledBookingsIgnored(t *testing.T) {
	checker := NewIntervalScan(0)
	cancelled := confirmedBooking("10:00", 60)
	cancelled.Status = domain.StatusCancelled

	free, err := checker.IsFree(domain.Slot{StartTime: "10:00", EndTime: "11:00"}, []*domain.Booking{cancelled})
	require.NoError(t, err)
	assert.True(t, free)
}

func TestFilter(t *testing.T) {
	checker := NewIntervalScan(0)
	existing := []*domain.Booking{
		confirmedBooking("10:00", 60),
		confirmedBooking("14:00", 60),
	}

	slots := []domain.Slot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
		{StartTime: "10:00", EndTime: "11:00", Available: true},
		{StartTime: "11:00", EndTime: "12:00", Available: true},
		{StartTime: "14:00", EndTime: "15:00", Available: true},
		{StartTime: "15:00", EndTime: "16:00", Available: true},
	}

	free, err := checker.Filter(slots, existing)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "11:00", "15:00"}, slotStarts(free))
}

func TestFilter_NoBookings(t *testing.T) {
	checker := NewIntervalScan(15)
	slots := []domain.Slot{
		{StartTime: "09:00", EndTime: "10:00", Available: true},
	}

	free, err := checker.Filter(slots, nil)
	require.NoError(t, err)
	assert.Equal(t, slots, free)
}
