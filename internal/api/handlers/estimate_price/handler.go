package estimate_price

import (
	"math"
	"net/http"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide"
	msgUnknownServiceType = "Type de service inconnu"
	msgUnknownFrequency   = "Fréquence inconnue"
	msgNegativeSurface    = "La surface ne peut pas être négative"
)

// EstimateRequest HTTP request model
type EstimateRequest struct {
	ServiceType        string   `json:"serviceType"`
	Surface            float64  `json:"surface"`
	Frequency          string   `json:"frequency"`
	AdditionalServices []string `json:"additionalServices"`
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	Success             bool    `json:"success"`
	BasePrice           float64 `json:"basePrice"`
	DiscountPercent     float64 `json:"discountPercent"`
	DiscountedBasePrice float64 `json:"discountedBasePrice"`
	AdditionalCost      float64 `json:"additionalCost"`
	TotalPrice          float64 `json:"totalPrice"`
}

type Handler struct {
	engine PricingEngine
	logger Logger
}

func NewHandler(engine PricingEngine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle POST /api/pricing/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/estimate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if msg := validateRequest(&req); msg != "" {
		h.logger.Warn("POST /pricing/estimate - %s: %+v", msg, req)
		handlers.RespondBadRequest(w, msg)
		return
	}

	estimate := h.engine.Compute(
		domain.ServiceType(req.ServiceType),
		req.Surface,
		domain.Frequency(req.Frequency),
		req.AdditionalServices,
	)

	handlers.RespondJSON(w, http.StatusOK, fromEstimate(estimate))
}

// validateRequest возвращает сообщение об ошибке или пустую строку
func validateRequest(req *EstimateRequest) string {
	switch {
	case !domain.ServiceType(req.ServiceType).IsValid():
		return msgUnknownServiceType
	case !domain.Frequency(req.Frequency).IsValid():
		return msgUnknownFrequency
	case req.Surface < 0:
		return msgNegativeSurface
	}
	return ""
}

func fromEstimate(e pricing.Estimate) EstimateResponse {
	return EstimateResponse{
		Success:             true,
		BasePrice:           roundCents(e.BasePrice),
		DiscountPercent:     e.DiscountPercent,
		DiscountedBasePrice: roundCents(e.DiscountedBasePrice),
		AdditionalCost:      e.AdditionalCost,
		TotalPrice:          e.TotalPrice,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
