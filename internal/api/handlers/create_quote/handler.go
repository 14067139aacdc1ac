package create_quote

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	generateQuote "github.com/m04kA/SBN-BookingService/internal/usecase/generate_quote"
)

const (
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidDate        = "Date invalide, format attendu : AAAA-MM-JJ"
	msgInvalidInput       = "Type de service ou fréquence invalide"
	msgInvalidPromoCode   = "Code promo invalide"
	msgQuoteFailed        = "Erreur lors de la génération du devis"
	msgPDFFailed          = "Erreur lors de la génération du PDF"

	pdfFilename = "devis.pdf"
)

type Handler struct {
	useCase GenerateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GenerateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /quotes")
	if !ok {
		return
	}

	quote, err := h.useCase.Create(req)
	if err != nil {
		h.respondUseCaseError(w, "POST /quotes", msgQuoteFailed, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CreateQuoteResponse{Success: true, Quote: FromDomainQuote(quote)})
}

// HandlePDF POST /api/quotes/generate-pdf
func (h *Handler) HandlePDF(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /quotes/generate-pdf")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.useCase.RenderPDF(&buf, req); err != nil {
		h.respondUseCaseError(w, "POST /quotes/generate-pdf", msgPDFFailed, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+pdfFilename)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("POST /quotes/generate-pdf - Failed to write response: %v", err)
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*generateQuote.Request, bool) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return nil, false
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}
	return useCaseReq, true
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, route, fallback string, err error) {
	switch {
	case errors.Is(err, generateQuote.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, generateQuote.ErrInvalidPromoCode):
		h.logger.Warn("%s - Invalid promo code", route)
		handlers.RespondBadRequest(w, msgInvalidPromoCode)

	default:
		h.logger.Error("%s - Failed to generate quote: %v", route, err)
		handlers.RespondError(w, http.StatusInternalServerError, fallback)
	}
}
