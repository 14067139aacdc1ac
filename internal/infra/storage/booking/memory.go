package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// MemoryRepository хранилище бронирований на время жизни процесса
// Записи теряются при перезапуске
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]int
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]int),
	}
}

// Append добавляет бронирование в конец списка одной операцией
func (r *MemoryRepository) Append(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return ErrDuplicateID
	}

	stored := cloneBooking(booking)
	r.byID[stored.ID] = len(r.bookings)
	r.bookings = append(r.bookings, stored)
	return nil
}

// List возвращает все бронирования в порядке добавления
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, len(r.bookings))
	for i, b := range r.bookings {
		result[i] = cloneBooking(b)
	}
	return result, nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return cloneBooking(r.bookings[idx]), nil
}

// CountBySlot считает активные бронирования на дату и слот
func (r *MemoryRepository) CountBySlot(_ context.Context, date time.Time, timeSlot string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, b := range r.bookings {
		if b.HoldsSlot(date, timeSlot) {
			count++
		}
	}
	return count, nil
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	c.AdditionalServices = append([]string(nil), b.AdditionalServices...)
	return &c
}
