package estimate_price

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/internal/pricing"
	"github.com/m04kA/SBN-BookingService/pkg/logger/loggertest"
)

func estimate(t *testing.T, body string) *httptest.ResponseRecorder {
	h := NewHandler(pricing.NewEngine(pricing.DefaultTables()), loggertest.New(t))
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/pricing/estimate", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	rec := estimate(t, `{"serviceType":"bureau","surface":200,"frequency":"hebdomadaire","additionalServices":["vitres","inconnu"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 500.0, resp.BasePrice)
	assert.Equal(t, 20.0, resp.DiscountPercent)
	assert.Equal(t, 400.0, resp.DiscountedBasePrice)
	assert.Equal(t, 50.0, resp.AdditionalCost)
	assert.Equal(t, 450.0, resp.TotalPrice)
}

func TestHandle_BadRequest(t *testing.T) {
	bodies := []string{
		`{"serviceType":"maison","surface":100,"frequency":"unique"}`,
		`{"serviceType":"bureau","surface":100,"frequency":"annuel"}`,
		`{"serviceType":"bureau","surface":-1,"frequency":"unique"}`,
		`not json`,
	}

	for _, body := range bodies {
		rec := estimate(t, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 127.5, roundCents(127.5))
	assert.Equal(t, 33.33, roundCents(33.333333))
}
