package generate_quote

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
	"github.com/m04kA/SBN-BookingService/internal/usecase/validate_promo"
	"github.com/m04kA/SBN-BookingService/pkg/logger/loggertest"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type countingMetrics struct{ formats []string }

func (m *countingMetrics) ObserveQuote(format string) { m.formats = append(m.formats, format) }

var testNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *countingMetrics) {
	log := loggertest.New(t)
	m := &countingMetrics{}
	uc := NewUseCase(
		pricing.NewEngine(pricing.DefaultTables()),
		domain.DefaultAddOns,
		validate_promo.NewUseCase(domain.DefaultPromoCodes, log),
		m,
		log,
	)
	uc.timeProvider = fixedClock{now: testNow}
	return uc, m
}

func sampleRequest() *Request {
	return &Request{Draft: domain.Draft{
		ServiceType:        domain.ServiceIndustriel,
		Surface:            100,
		Frequency:          domain.FrequencyUnique,
		AdditionalServices: []string{"vitres", "tapis"},
		CompanyName:        "Tech Corp",
		ContactName:        "Marie Dupont",
		EstimatedPrice:     1,
	}}
}

func TestCreate_Breakdown(t *testing.T) {
	uc, m := newTestUseCase(t)

	quote, err := uc.Create(sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "QUOTE-1792144800000", quote.ID)
	assert.Equal(t, 400.0, quote.BasePrice)
	assert.Equal(t, 110.0, quote.AdditionalServicesPrice)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 510.0, quote.TotalPrice)
	assert.Equal(t, 510.0, quote.EstimatedPrice)
	assert.Equal(t, domain.QuoteStatusDraft, quote.Status)
	assert.Equal(t, testNow.AddDate(0, 0, 30), quote.ValidUntil)
	assert.Equal(t, []string{"json"}, m.formats)
}

func TestCreate_FrequencyDiscountAndPromo(t *testing.T) {
	uc, _ := newTestUseCase(t)
	req := &Request{
		Draft: domain.Draft{
			ServiceType:        domain.ServiceBureau,
			Surface:            200,
			Frequency:          domain.FrequencyHebdomadaire,
			AdditionalServices: []string{"vitres"},
		},
		PromoCode: "nouveau10",
	}

	quote, err := uc.Create(req)
	require.NoError(t, err)

	assert.Equal(t, 500.0, quote.BasePrice)
	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, "NOUVEAU10", quote.PromoCode)
	assert.Equal(t, 10.0, quote.PromoDiscount)
	assert.Equal(t, 405.0, quote.TotalPrice)
	assert.Equal(t, 450.0, quote.EstimatedPrice)
}

func TestCreate_InvalidInput(t *testing.T) {
	uc, m := newTestUseCase(t)

	req := sampleRequest()
	req.Draft.ServiceType = "maison"
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = sampleRequest()
	req.Draft.Frequency = "annuel"
	_, err = uc.Create(req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = sampleRequest()
	req.PromoCode = "SOLDES"
	_, err = uc.Create(req)
	assert.ErrorIs(t, err, ErrInvalidPromoCode)

	assert.Empty(t, m.formats)
}

func TestRenderPDF(t *testing.T) {
	uc, m := newTestUseCase(t)
	var buf bytes.Buffer

	err := uc.RenderPDF(&buf, sampleRequest())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
	assert.Equal(t, []string{"pdf"}, m.formats)
}

func TestRenderPDF_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(t)
	var buf bytes.Buffer

	req := sampleRequest()
	req.Draft.ServiceType = ""

	err := uc.RenderPDF(&buf, req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, buf.Len())
}
