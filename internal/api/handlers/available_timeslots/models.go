package available_timeslots

import (
	"github.com/petfit/booking-service/internal/domain"
	getAvailableTimeslots "github.com/petfit/booking-service/internal/usecase/get_available_timeslots"
)

// SlotResponse свободный слот в HTTP ответе
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailableTimeSlotsResponse HTTP response model
type AvailableTimeSlotsResponse struct {
	GroomerID int64          `json:"groomerId"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimeslots.Response) *AvailableTimeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        s.ID,
			StartTime: s.StartTime.Format(domain.TimeFormat),
			EndTime:   s.EndTime.Format(domain.TimeFormat),
		})
	}

	return &AvailableTimeSlotsResponse{
		GroomerID: resp.GroomerID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
