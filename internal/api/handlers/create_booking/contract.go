package create_booking

import (
	"context"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, draft *domain.Draft) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
