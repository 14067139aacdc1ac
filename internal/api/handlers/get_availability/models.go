package get_availability

import (
	"github.com/m04kA/SBN-BookingService/internal/domain"
	getAvailability "github.com/m04kA/SBN-BookingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Shift     string `json:"shift"`
	Available bool   `json:"available"`
}

// SlotsResponse ответ GET /availability/{date}
type SlotsResponse struct {
	Success bool           `json:"success"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

// CheckSlotResponse ответ GET /availability/{date}/{timeSlot}
type CheckSlotResponse struct {
	Success   bool   `json:"success"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Available bool   `json:"available"`
}

// DatesResponse ответ GET /availability-dates
type DatesResponse struct {
	Success bool     `json:"success"`
	Dates   []string `json:"dates"`
}

// FromUseCaseSlots конвертирует ответ use case в HTTP response
func FromUseCaseSlots(resp *getAvailability.SlotsResponse) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Value:     s.Value,
			Label:     s.Label,
			Shift:     string(s.Shift),
			Available: s.Available,
		}
	}

	return &SlotsResponse{
		Success: true,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
