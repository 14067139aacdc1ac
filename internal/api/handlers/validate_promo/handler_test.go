package validate_promo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	validatePromo "github.com/m04kA/SBN-BookingService/internal/usecase/validate_promo"
	"github.com/m04kA/SBN-BookingService/pkg/logger/loggertest"
)

func TestHandle(t *testing.T) {
	log := loggertest.New(t)
	h := NewHandler(validatePromo.NewUseCase(domain.DefaultPromoCodes, log), log)

	tests := []struct {
		name string
		body string
		code int
		want string
	}{
		{name: "valid", body: `{"code":"fidele15"}`, code: http.StatusOK,
			want: `{"valid":true,"discount":15,"message":"Code promo appliqué : -15%"}`},
		{name: "invalid", body: `{"code":"XYZ"}`, code: http.StatusOK,
			want: `{"valid":false,"message":"Code promo invalide"}`},
		{name: "missing code", body: `{}`, code: http.StatusOK,
			want: `{"valid":false,"message":"Code promo invalide"}`},
		{name: "malformed", body: `{"code":`, code: http.StatusInternalServerError,
			want: `{"valid":false,"message":"Erreur lors de la validation du code"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/promo/validate", strings.NewReader(tt.body)))

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
