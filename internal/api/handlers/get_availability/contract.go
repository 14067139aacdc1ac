package get_availability

import (
	"context"
	"time"

	getAvailability "github.com/m04kA/SBN-BookingService/internal/usecase/get_availability"
)

type GetAvailabilityUseCase interface {
	Slots(ctx context.Context, date time.Time) (*getAvailability.SlotsResponse, error)
	CheckSlot(ctx context.Context, date time.Time, timeSlot string) (*getAvailability.SlotResponse, error)
	BookableDates() []time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
