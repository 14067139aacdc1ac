package validate_promo

import (
	"net/http"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
)

const msgValidateFailed = "Erreur lors de la validation du code"

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code string `json:"code"`
}

// ValidatePromoResponse HTTP response model
type ValidatePromoResponse struct {
	Valid    bool     `json:"valid"`
	Discount *float64 `json:"discount,omitempty"`
	Message  string   `json:"message"`
}

type Handler struct {
	useCase ValidatePromoUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/promo/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, ValidatePromoResponse{Message: msgValidateFailed})
		return
	}

	result := h.useCase.Execute(req.Code)

	resp := ValidatePromoResponse{Valid: result.Valid, Message: result.Message}
	if result.Valid {
		discount := result.Discount
		resp.Discount = &discount
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
