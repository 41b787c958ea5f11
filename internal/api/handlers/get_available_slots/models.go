package get_available_slots

import (
	"time"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m-ilin/PAG-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model. Slots are 12-hour labels
// in ascending order; a closed or fully booked day yields an empty list.
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	labels := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		labels[i] = slot.Label()
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: labels,
	}
}

// ToUseCaseRequest builds the use case request from the date query param.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
