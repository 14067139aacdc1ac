package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SBN-BookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/create_booking"
	createQuoteHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/create_quote"
	estimatePriceHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/estimate_price"
	getAvailabilityHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/list_bookings"
	validatePromoHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/validate_promo"
	wizardSessionHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/wizard_session"
	"github.com/m04kA/SBN-BookingService/internal/api/middleware"
	"github.com/m04kA/SBN-BookingService/pkg/metrics"
)

const rootMessage = "API SB Nettoyage fonctionnelle!"

// Config зависимости роутера
type Config struct {
	Logger middleware.Logger

	CreateBooking   *createBookingHandler.Handler
	ListBookings    *listBookingsHandler.Handler
	GetBooking      *getBookingHandler.Handler
	GetAvailability *getAvailabilityHandler.Handler
	ValidatePromo   *validatePromoHandler.Handler
	EstimatePrice   *estimatePriceHandler.Handler
	CreateQuote     *createQuoteHandler.Handler
	WizardSession   *wizardSessionHandler.Handler

	// Metrics nil отключает middleware и endpoint метрик
	Metrics     *metrics.Metrics
	MetricsPath string

	// RateLimiter nil отключает ограничение запросов
	RateLimiter        *middleware.RateLimiter
	CORSAllowedOrigins []string
}

// New создает роутер со всеми маршрутами API
func New(cfg *Config) http.Handler {
	r := mux.NewRouter()

	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", cfg.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", cfg.ListBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cfg.GetBooking.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/availability/{date}", cfg.GetAvailability.HandleSlots).Methods(http.MethodGet)
	api.HandleFunc("/availability/{date}/{timeSlot}", cfg.GetAvailability.HandleSlot).Methods(http.MethodGet)
	api.HandleFunc("/availability-dates", cfg.GetAvailability.HandleDates).Methods(http.MethodGet)

	// --- Цены ---
	api.HandleFunc("/pricing/estimate", cfg.EstimatePrice.Handle).Methods(http.MethodPost)

	// --- Маршруты с ограничением запросов ---
	limited := api.PathPrefix("").Subrouter()
	if cfg.RateLimiter != nil {
		limited.Use(cfg.RateLimiter.Middleware)
	}

	limited.HandleFunc("/promo/validate", cfg.ValidatePromo.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/quotes", cfg.CreateQuote.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/quotes/generate-pdf", cfg.CreateQuote.HandlePDF).Methods(http.MethodPost)

	wizard := limited.PathPrefix("/wizard/sessions").Subrouter()
	wizard.HandleFunc("", cfg.WizardSession.HandleStart).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}", cfg.WizardSession.HandleGet).Methods(http.MethodGet)
	wizard.HandleFunc("/{sessionId}", cfg.WizardSession.HandleDelete).Methods(http.MethodDelete)
	wizard.HandleFunc("/{sessionId}/steps/{step}", cfg.WizardSession.HandleStep).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/back", cfg.WizardSession.HandleBack).Methods(http.MethodPost)
	wizard.HandleFunc("/{sessionId}/submit", cfg.WizardSession.HandleSubmit).Methods(http.MethodPost)

	var h http.Handler = r
	h = middleware.CORS(cfg.CORSAllowedOrigins)(h)
	h = middleware.Recovery(cfg.Logger)(h)
	return h
}
