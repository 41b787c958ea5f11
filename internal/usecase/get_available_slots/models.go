package get_available_slots

import (
	"time"

	"github.com/m-ilin/PAG-AppointmentService/pkg/types"
)

// Request asks for the open slots on one calendar date.
type Request struct {
	Date time.Time
}

// Response carries the open slots in ascending order. Formatting to
// 12-hour labels happens at the HTTP boundary.
type Response struct {
	Date  time.Time
	Slots []types.TimeOfDay
}
