package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SBN-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

// UseCase use case для создания бронирования
// Бизнес-правила черновика не перепроверяются: их проверяет мастер
// Оценочная цена всегда пересчитывается движком, значение клиента игнорируется
type UseCase struct {
	bookingRepo  BookingRepository
	engine       *pricing.Engine
	metrics      Metrics
	timeProvider TimeProvider
	newSuffix    func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, engine *pricing.Engine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		engine:       engine,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newSuffix:    randomSuffix,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, draft *domain.Draft) (*domain.Booking, error) {
	if draft == nil {
		uc.logger.Warn("CreateBooking: empty draft")
		return nil, ErrInvalidInput
	}

	uc.logger.Info("CreateBooking: company=%q, service=%s, surface=%.0f, date=%s, slot=%s",
		draft.CompanyName, draft.ServiceType, draft.Surface, draft.Date.Format(domain.DateFormat), draft.TimeSlot)

	now := uc.timeProvider.Now().UTC()

	booking := &domain.Booking{
		ID:        fmt.Sprintf("%s%d-%s", domain.BookingIDPrefix, now.UnixMilli(), uc.newSuffix()),
		Draft:     *draft,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	booking.AdditionalServices = append([]string(nil), draft.AdditionalServices...)

	price := uc.engine.ComputeDraft(&booking.Draft).TotalPrice
	if draft.EstimatedPrice != price {
		uc.logger.Warn("CreateBooking: client price %.0f replaced by computed %.0f", draft.EstimatedPrice, price)
	}
	booking.EstimatedPrice = price

	if err := uc.bookingRepo.Append(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateID) {
			uc.logger.Error("CreateBooking: id collision for %s", booking.ID)
		} else {
			uc.logger.Error("CreateBooking: failed to store booking %s: %v", booking.ID, err)
		}
		return nil, fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveBooking(booking.EstimatedPrice)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, price=%.0f", booking.ID, booking.EstimatedPrice)
	return booking, nil
}

// randomSuffix возвращает 8 hex-символов из UUIDv4
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
