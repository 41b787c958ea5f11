package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// 2025-10-13 is a Monday.
var (
	monday   = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

func labels(slots []types.TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label()
	}
	return out
}

func TestSlotsForDate_Weekday(t *testing.T) {
	slots := SlotsForDate(monday)

	require.Len(t, slots, 10)
	assert.Equal(t, []string{
		"8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
		"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
	}, labels(slots))
}

func TestSlotsForDate_Saturday(t *testing.T) {
	slots := SlotsForDate(saturday)

	require.Len(t, slots, 7)
	assert.Equal(t, "9:00 AM", slots[0].Label())
	assert.Equal(t, "3:00 PM", slots[len(slots)-1].Label())
}

func TestSlotsForDate_SundayClosed(t *testing.T) {
	slots := SlotsForDate(sunday)
	assert.Empty(t, slots)
}

func TestSubtractBooked(t *testing.T) {
	slots := SlotsForDate(monday)
	nine := types.TimeOfDay(9 * 60)
	two := types.TimeOfDay(14 * 60)

	appointments := []*Appointment{
		{StartTime: nine, Status: StatusPending},
		{StartTime: two, Status: StatusConfirmed},
	}

	available := SubtractBooked(slots, appointments)
	require.Len(t, available, 8)
	assert.NotContains(t, available, nine)
	assert.NotContains(t, available, two)

	// Order preserved
	assert.Equal(t, "8:00 AM", available[0].Label())
	assert.Equal(t, "10:00 AM", available[1].Label())
}

func TestSubtractBooked_CancelledFreesSlot(t *testing.T) {
	slots := SlotsForDate(monday)
	nine := types.TimeOfDay(9 * 60)

	appointments := []*Appointment{
		{StartTime: nine, Status: StatusCancelled},
	}

	available := SubtractBooked(slots, appointments)
	assert.Len(t, available, 10)
	assert.Contains(t, available, nine)
}

func TestSubtractBooked_NoShowStillOccupies(t *testing.T) {
	slots := SlotsForDate(monday)
	nine := types.TimeOfDay(9 * 60)

	appointments := []*Appointment{
		{StartTime: nine, Status: StatusNoShow},
	}

	available := SubtractBooked(slots, appointments)
	assert.NotContains(t, available, nine)
}

func TestSlotExists(t *testing.T) {
	assert.True(t, SlotExists(monday, types.TimeOfDay(8*60)))
	assert.True(t, SlotExists(monday, types.TimeOfDay(17*60)))

	// On the half hour is never a slot
	assert.False(t, SlotExists(monday, types.TimeOfDay(8*60+30)))
	// After the last bookable hour
	assert.False(t, SlotExists(monday, types.TimeOfDay(18*60)))
	// Before opening
	assert.False(t, SlotExists(monday, types.TimeOfDay(7*60)))
	// Closed day has no slots at all
	assert.False(t, SlotExists(sunday, types.TimeOfDay(10*60)))
	// Saturday opens later and closes earlier
	assert.False(t, SlotExists(saturday, types.TimeOfDay(8*60)))
	assert.True(t, SlotExists(saturday, types.TimeOfDay(15*60)))
	assert.False(t, SlotExists(saturday, types.TimeOfDay(16*60)))
}
