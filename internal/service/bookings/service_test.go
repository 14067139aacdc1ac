package bookings

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

type brokenRepo struct{}

func (brokenRepo) List(context.Context) ([]*domain.Booking, error) {
	return nil, errors.New("timeout")
}

func (brokenRepo) GetByID(context.Context, string) (*domain.Booking, error) {
	return nil, errors.New("timeout")
}

func seed(t *testing.T, repo *bookingRepo.MemoryRepository, ids ...string) {
	t.Helper()
	created := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	for _, id := range ids {
		require.NoError(t, repo.Append(context.Background(), &domain.Booking{
			ID: id,
			Draft: domain.Draft{
				ServiceType: domain.ServiceCommerce,
				Surface:     120,
				Frequency:   domain.FrequencyMensuel,
				Date:        time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
				TimeSlot:    "18:00",
				CompanyName: "Boulangerie Martin",
			},
			Status:    domain.StatusPending,
			CreatedAt: created,
			UpdatedAt: created,
		}))
	}
}

func TestService_List(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	seed(t, repo, "BK-1", "BK-2", "BK-3")
	svc := NewService(repo, loggertest.New(t))

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "BK-1", resp.Bookings[0].ID)
	assert.Equal(t, "BK-3", resp.Bookings[2].ID)
	assert.Equal(t, "2026-10-19", resp.Bookings[0].Date)
	assert.Equal(t, "2026-10-16T10:00:00Z", resp.Bookings[0].CreatedAt)
	assert.NotNil(t, resp.Bookings[0].AdditionalServices)
}

func TestService_List_Empty(t *testing.T) {
	svc := NewService(bookingRepo.NewMemoryRepository(), loggertest.New(t))

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, resp.Bookings)
	assert.Zero(t, resp.Total)
}

func TestService_GetByID(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	seed(t, repo, "BK-1")
	svc := NewService(repo, loggertest.New(t))

	resp, err := svc.GetByID(context.Background(), "BK-1")
	require.NoError(t, err)
	assert.Equal(t, "Boulangerie Martin", resp.CompanyName)

	_, err = svc.GetByID(context.Background(), "BK-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_RepositoryErrors(t *testing.T) {
	svc := NewService(brokenRepo{}, loggertest.New(t))

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetByID(context.Background(), "BK-1")
	assert.ErrorIs(t, err, ErrInternal)
}
