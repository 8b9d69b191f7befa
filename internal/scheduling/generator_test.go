package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/pkg/types"
)

// 2026-09-14 is a Monday
var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func testService(duration, buffer int) *domain.ServiceDefinition {
	return &domain.ServiceDefinition{
		ID:              1,
		OwnerID:         100,
		Name:            "Consultation",
		DurationMinutes: duration,
		WeeklyAvailability: domain.WeeklyAvailability{
			Monday: &domain.DayWindow{Start: "09:00", End: "17:00"},
		},
		BookingBufferMinutes: buffer,
	}
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.String()
	}
	return starts
}

func TestGenerate_GridWithBuffer(t *testing.T) {
	// 60 min service with 15 min buffer in a 09:00-17:00 window:
	// slots step by 75 minutes and the last one must still end by 17:00
	svc := testService(60, 15)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	slots, err := Generate(svc, monday, now)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"09:00", "10:15", "11:30", "12:45", "14:00", "15:15"},
		slotStarts(slots))

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
}

func TestGenerate_NoBuffer(t *testing.T) {
	svc := testService(60, 0)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	slots, err := Generate(svc, monday, now)
	require.NoError(t, err)

	// Back to back hourly slots, 09:00 through 16:00
	require.Len(t, slots, 8)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "16:00", slots[7].StartTime.String())
}

func TestGenerate_DisabledDay(t *testing.T) {
	svc := testService(60, 15)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sunday := monday.AddDate(0, 0, -1)

	slots, err := Generate(svc, sunday, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerate_DurationLongerThanWindow(t *testing.T) {
	svc := testService(600, 0)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	slots, err := Generate(svc, monday, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerate_AdvanceFloor(t *testing.T) {
	svc := testService(60, 0)
	svc.AdvanceBookingHours = 2

	// Noon on the booking day: slots before 14:00 are too close
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

	slots, err := Generate(svc, monday, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"14:00", "15:00", "16:00"}, slotStarts(slots))
}

func TestGenerate_AdvanceCeiling(t *testing.T) {
	svc := testService(60, 0)
	svc.MaxAdvanceBookingHours = 24

	// A week before the booking date everything is beyond the horizon
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	slots, err := Generate(svc, monday, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFitsGrid(t *testing.T) {
	svc := testService(60, 15)

	tests := []struct {
		name  string
		start types.TimeString
		want  bool
	}{
		{name: "window start", start: "09:00", want: true},
		{name: "second slot", start: "10:15", want: true},
		{name: "off grid", start: "09:30", want: false},
		{name: "before window", start: "08:00", want: false},
		{name: "would exceed window", start: "16:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := FitsGrid(svc, monday, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestFitsGrid_DisabledDay(t *testing.T) {
	svc := testService(60, 15)
	sunday := monday.AddDate(0, 0, -1)

	ok, err := FitsGrid(svc, sunday, "09:00")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithinAdvanceWindow(t *testing.T) {
	svc := testService(60, 0)
	svc.AdvanceBookingHours = 2
	svc.MaxAdvanceBookingHours = 48

	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

	ok, err := WithinAdvanceWindow(svc, monday, "09:00", now)
	require.NoError(t, err)
	assert.False(t, ok, "09:00 is less than 2 hours away")

	ok, err = WithinAdvanceWindow(svc, monday, "10:00", now)
	require.NoError(t, err)
	assert.True(t, ok, "10:00 is exactly at the floor")

	inThreeDays := monday.AddDate(0, 0, 3)
	ok, err = WithinAdvanceWindow(svc, inThreeDays, "09:00", now)
	require.NoError(t, err)
	assert.False(t, ok, "three days out is beyond the 48h horizon")
}

func TestCandidateSlot(t *testing.T) {
	svc := testService(90, 0)

	slot, err := CandidateSlot(svc, "10:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
	assert.Equal(t, types.TimeString("11:30"), slot.EndTime)
}
