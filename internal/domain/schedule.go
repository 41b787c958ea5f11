package domain

import (
	"time"

	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// DayHours is the open/close pair for one weekday.
type DayHours struct {
	Open  types.TimeOfDay
	Close types.TimeOfDay
}

// businessHours is the static calendar policy of the shop.
// A missing weekday means closed.
var businessHours = map[time.Weekday]DayHours{
	time.Monday:    {Open: 8 * 60, Close: 18 * 60},
	time.Tuesday:   {Open: 8 * 60, Close: 18 * 60},
	time.Wednesday: {Open: 8 * 60, Close: 18 * 60},
	time.Thursday:  {Open: 8 * 60, Close: 18 * 60},
	time.Friday:    {Open: 8 * 60, Close: 18 * 60},
	time.Saturday:  {Open: 9 * 60, Close: 16 * 60},
	// Sunday closed
}

// WeekdayHours returns the business hours for a weekday.
// ok is false when the shop is closed that day.
func WeekdayHours(weekday time.Weekday) (DayHours, bool) {
	hours, ok := businessHours[weekday]
	return hours, ok
}

// HoursForDate resolves the business hours for a calendar date.
func HoursForDate(date time.Time) (DayHours, bool) {
	return WeekdayHours(date.Weekday())
}
