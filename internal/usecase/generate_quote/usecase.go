package generate_quote

import (
	"fmt"
	"io"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

const (
	formatJSON = "json"
	formatPDF  = "pdf"
)

// UseCase use case для расчета предложения и его PDF-версии
type UseCase struct {
	engine       *pricing.Engine
	addOns       []domain.AddOn
	promo        PromoLookup
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine *pricing.Engine,
	addOns []domain.AddOn,
	promo PromoLookup,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		addOns:       addOns,
		promo:        promo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create рассчитывает предложение
// Цена всегда пересчитывается движком, переданная estimatedPrice игнорируется
func (uc *UseCase) Create(req *Request) (*domain.Quote, error) {
	quote, err := uc.build(req)
	if err != nil {
		return nil, err
	}

	uc.observe(formatJSON)
	uc.logger.Info("CreateQuote: quote %s, company=%q, total=%.0f, promo=%q",
		quote.ID, quote.CompanyName, quote.TotalPrice, quote.PromoCode)
	return quote, nil
}

// RenderPDF рассчитывает предложение и пишет его PDF-версию в w
func (uc *UseCase) RenderPDF(w io.Writer, req *Request) error {
	quote, err := uc.build(req)
	if err != nil {
		return err
	}

	if err := renderPDF(w, quote, uc.addOnLabels()); err != nil {
		uc.logger.Error("RenderPDF: failed to render quote %s: %v", quote.ID, err)
		return fmt.Errorf("%w: render pdf: %v", ErrInternal, err)
	}

	uc.observe(formatPDF)
	uc.logger.Info("RenderPDF: rendered quote %s", quote.ID)
	return nil
}

func (uc *UseCase) build(req *Request) (*domain.Quote, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQuote: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().UTC()
	estimate := uc.engine.ComputeDraft(&req.Draft)

	quote := &domain.Quote{
		ID:                      fmt.Sprintf("%s%d", domain.QuoteIDPrefix, now.UnixMilli()),
		Draft:                   req.Draft,
		BasePrice:               estimate.BasePrice,
		AdditionalServicesPrice: estimate.AdditionalCost,
		Discount:                estimate.BasePrice - estimate.DiscountedBasePrice,
		TotalPrice:              estimate.TotalPrice,
		Status:                  domain.QuoteStatusDraft,
		CreatedAt:               now,
		ValidUntil:              now.AddDate(0, 0, domain.QuoteValidityDays),
	}
	quote.AdditionalServices = append([]string(nil), req.Draft.AdditionalServices...)
	quote.EstimatedPrice = estimate.TotalPrice

	if req.PromoCode != "" {
		promo, ok := uc.promo.Lookup(req.PromoCode)
		if !ok {
			uc.logger.Warn("CreateQuote: unknown promo code %q", req.PromoCode)
			return nil, ErrInvalidPromoCode
		}
		quote.PromoCode = promo.Code
		quote.PromoDiscount = promo.Discount
		quote.TotalPrice = uc.engine.ApplyPromo(estimate.TotalPrice, promo.Discount)
	}

	return quote, nil
}

func (uc *UseCase) addOnLabels() map[string]string {
	labels := make(map[string]string, len(uc.addOns))
	for _, a := range uc.addOns {
		labels[a.ID] = a.Label
	}
	return labels
}

func (uc *UseCase) observe(format string) {
	if uc.metrics != nil {
		uc.metrics.ObserveQuote(format)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if !req.Draft.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.Draft.ServiceType)
	}
	if !req.Draft.Frequency.IsValid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, req.Draft.Frequency)
	}
	if req.Draft.Surface < 0 {
		return fmt.Errorf("%w: surface must not be negative", ErrInvalidInput)
	}
	return nil
}
