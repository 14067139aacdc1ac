package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

// UseCase use case для проверки доступности слотов
// Слот доступен, если дата рабочая, входит в горизонт, не закрыта и занятых мест меньше вместимости
type UseCase struct {
	bookingRepo  BookingRepository
	rules        domain.AvailabilityRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, rules domain.AvailabilityRules, logger Logger) *UseCase {
	if rules.CapacityPerSlot <= 0 {
		rules.CapacityPerSlot = domain.DefaultCapacity
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Slots возвращает доступность всех слотов каталога на дату
func (uc *UseCase) Slots(ctx context.Context, date time.Time) (*SlotsResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date = domain.DateOnly(date)
	bookable := uc.rules.IsBookableDate(date, uc.timeProvider.Now())

	slots := make([]domain.AvailableSlot, 0, len(domain.TimeSlots))
	for _, ts := range domain.TimeSlots {
		slot, err := uc.slot(ctx, date, ts, bookable)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailability: date=%s, bookable=%t, slots=%d",
		date.Format(domain.DateFormat), bookable, len(slots))

	return &SlotsResponse{Date: date, Slots: slots}, nil
}

// CheckSlot проверяет доступность одного слота
func (uc *UseCase) CheckSlot(ctx context.Context, date time.Time, timeSlot string) (*SlotResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	ts, ok := domain.FindTimeSlot(timeSlot)
	if !ok {
		uc.logger.Warn("CheckSlot: unknown time slot %q", timeSlot)
		return nil, ErrUnknownTimeSlot
	}

	date = domain.DateOnly(date)
	slot, err := uc.slot(ctx, date, ts, uc.rules.IsBookableDate(date, uc.timeProvider.Now()))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckSlot: date=%s, slot=%s, booked=%d/%d, available=%t",
		date.Format(domain.DateFormat), ts.Value, slot.BookedSpots, slot.TotalSpots, slot.Available)

	return &SlotResponse{Date: date, TimeSlot: ts.Value, Available: slot.Available}, nil
}

// BookableDates возвращает будние дни, начиная с завтрашнего, в пределах горизонта
func (uc *UseCase) BookableDates() []time.Time {
	horizon := uc.rules.HorizonDays
	if horizon <= 0 {
		horizon = domain.DefaultHorizonDays
	}

	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)

	dates := make([]time.Time, 0, horizon)
	for i := 1; i <= horizon; i++ {
		date := today.AddDate(0, 0, i)
		if uc.rules.IsBookableDate(date, now) {
			dates = append(dates, date)
		}
	}
	return dates
}

func (uc *UseCase) slot(ctx context.Context, date time.Time, ts domain.TimeSlot, bookable bool) (domain.AvailableSlot, error) {
	slot := domain.AvailableSlot{TimeSlot: ts, TotalSpots: uc.rules.CapacityPerSlot}
	if !bookable {
		return slot, nil
	}

	booked, err := uc.bookingRepo.CountBySlot(ctx, date, ts.Value)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count bookings for %s %s: %v",
			date.Format(domain.DateFormat), ts.Value, err)
		return domain.AvailableSlot{}, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	slot.BookedSpots = booked
	slot.Available = !slot.IsFull()
	return slot, nil
}
