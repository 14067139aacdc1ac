package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SBN-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SBN-BookingService/pkg/logger/loggertest"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type failingRepo struct{}

func (failingRepo) CountBySlot(context.Context, time.Time, string) (int, error) {
	return 0, errors.New("connection refused")
}

// Пятница, 16 октября 2026
var testNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo BookingRepository, rules domain.AvailabilityRules) *UseCase {
	uc := NewUseCase(repo, rules, loggertest.New(t))
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func addBooking(t *testing.T, repo *bookingRepo.MemoryRepository, id string, date time.Time, slot string, status domain.BookingStatus) {
	t.Helper()
	require.NoError(t, repo.Append(context.Background(), &domain.Booking{
		ID:     id,
		Draft:  domain.Draft{Date: date, TimeSlot: slot},
		Status: status,
	}))
}

func TestSlots_EmptyRepositoryAllAvailable(t *testing.T) {
	uc := newTestUseCase(t, bookingRepo.NewMemoryRepository(), domain.AvailabilityRules{CapacityPerSlot: 1, HorizonDays: 30})

	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Slots(context.Background(), monday)
	require.NoError(t, err)

	require.Len(t, resp.Slots, len(domain.TimeSlots))
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, slot.Value)
	}
	assert.Equal(t, "6h00 - 8h00", resp.Slots[0].Label)
	assert.Equal(t, domain.ShiftSoir, resp.Slots[6].Shift)
}

func TestSlots_CapacityReached(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	addBooking(t, repo, "BK-1", monday, "08:00", domain.StatusPending)
	addBooking(t, repo, "BK-2", monday, "10:00", domain.StatusCancelled)

	uc := newTestUseCase(t, repo, domain.AvailabilityRules{CapacityPerSlot: 1, HorizonDays: 30})

	resp, err := uc.Slots(context.Background(), monday)
	require.NoError(t, err)

	available := make(map[string]bool)
	for _, slot := range resp.Slots {
		available[slot.Value] = slot.Available
	}
	assert.False(t, available["08:00"])
	assert.True(t, available["10:00"])
	assert.True(t, available["06:00"])
}

func TestSlots_DeterministicForSameInputs(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	addBooking(t, repo, "BK-1", monday, "14:00", domain.StatusConfirmed)
	uc := newTestUseCase(t, repo, domain.AvailabilityRules{CapacityPerSlot: 1})

	first, err := uc.Slots(context.Background(), monday)
	require.NoError(t, err)
	second, err := uc.Slots(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSlots_DateRules(t *testing.T) {
	closed := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	rules := domain.AvailabilityRules{CapacityPerSlot: 2, HorizonDays: 10, ClosedDates: []time.Time{closed}}
	uc := newTestUseCase(t, bookingRepo.NewMemoryRepository(), rules)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "today", date: testNow, want: true},
		{name: "yesterday", date: testNow.AddDate(0, 0, -1), want: false},
		{name: "saturday", date: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), want: false},
		{name: "closed date", date: closed, want: false},
		{name: "beyond horizon", date: time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC), want: false},
		{name: "last horizon day", date: time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Slots(context.Background(), tt.date)
			require.NoError(t, err)
			for _, slot := range resp.Slots {
				assert.Equal(t, tt.want, slot.Available, slot.Value)
				assert.Equal(t, 2, slot.TotalSpots)
			}
		})
	}
}

func TestCheckSlot(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	addBooking(t, repo, "BK-1", monday, "16:00", domain.StatusPending)
	uc := newTestUseCase(t, repo, domain.AvailabilityRules{CapacityPerSlot: 1})

	resp, err := uc.CheckSlot(context.Background(), monday, "16:00")
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "16:00", resp.TimeSlot)

	resp, err = uc.CheckSlot(context.Background(), monday, "18:00")
	require.NoError(t, err)
	assert.True(t, resp.Available)

	_, err = uc.CheckSlot(context.Background(), monday, "12:00")
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestSlots_RepositoryFailure(t *testing.T) {
	uc := newTestUseCase(t, failingRepo{}, domain.AvailabilityRules{CapacityPerSlot: 1})

	_, err := uc.Slots(context.Background(), time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestBookableDates(t *testing.T) {
	uc := newTestUseCase(t, bookingRepo.NewMemoryRepository(), domain.AvailabilityRules{HorizonDays: 30})

	dates := uc.BookableDates()

	// 30 календарных дней начиная с субботы 17.10: 20 будних дней
	require.Len(t, dates, 20)
	assert.Equal(t, "2026-10-19", dates[0].Format(domain.DateFormat))
	assert.Equal(t, "2026-11-13", dates[len(dates)-1].Format(domain.DateFormat))
	for _, d := range dates {
		assert.True(t, domain.IsWeekday(d))
		assert.True(t, d.After(testNow))
	}
}

func TestBookableDates_DefaultHorizon(t *testing.T) {
	uc := newTestUseCase(t, bookingRepo.NewMemoryRepository(), domain.AvailabilityRules{})

	assert.NotEmpty(t, uc.BookableDates())
	assert.Equal(t, domain.DefaultCapacity, uc.rules.CapacityPerSlot)
}
