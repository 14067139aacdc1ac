package get_availability

import (
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// SlotsResponse доступность всех слотов на дату
type SlotsResponse struct {
	Date  time.Time
	Slots []domain.AvailableSlot
}

// SlotResponse доступность одного слота
type SlotResponse struct {
	Date      time.Time
	TimeSlot  string
	Available bool
}
