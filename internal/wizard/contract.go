package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// Gateway шлюз, принимающий готовый черновик бронирования
type Gateway interface {
	CreateBooking(ctx context.Context, draft *domain.Draft) (*domain.Booking, error)
}

// GatewayFunc позволяет использовать функцию как Gateway
type GatewayFunc func(ctx context.Context, draft *domain.Draft) (*domain.Booking, error)

// CreateBooking вызывает саму функцию
func (f GatewayFunc) CreateBooking(ctx context.Context, draft *domain.Draft) (*domain.Booking, error) {
	return f(ctx, draft)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
