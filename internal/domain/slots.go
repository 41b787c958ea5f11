package domain

import (
	"time"

	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// GenerateSlots emits the bookable start times for one business day:
// one slot per whole hour from opening, with the last start one hour
// before closing so the default 60-minute job finishes by close.
func GenerateSlots(hours DayHours) []types.TimeOfDay {
	slots := make([]types.TimeOfDay, 0, 12)
	for t := hours.Open; !t.AddMinutes(DefaultDurationMinutes).After(hours.Close); t = t.AddMinutes(SlotStepMinutes) {
		slots = append(slots, t)
	}
	return slots
}

// SlotsForDate resolves the calendar policy for a date and generates its
// slots. Returns an empty slice for closed days.
func SlotsForDate(date time.Time) []types.TimeOfDay {
	hours, open := HoursForDate(date)
	if !open {
		return []types.TimeOfDay{}
	}
	return GenerateSlots(hours)
}

// SubtractBooked removes the start times of slot-occupying appointments
// from the generated slot list, preserving order. Comparison is by
// structured time value, never by formatted label.
func SubtractBooked(slots []types.TimeOfDay, appointments []*Appointment) []types.TimeOfDay {
	taken := make(map[types.TimeOfDay]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.OccupiesSlot() {
			taken[appt.StartTime] = struct{}{}
		}
	}

	available := make([]types.TimeOfDay, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}

// SlotExists reports whether start is one of the generated slots for date.
func SlotExists(date time.Time, start types.TimeOfDay) bool {
	for _, slot := range SlotsForDate(date) {
		if slot == start {
			return true
		}
	}
	return false
}
