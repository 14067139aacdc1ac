package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	EstimatedPrice      prometheus.Histogram
	QuotesGenerated     *prometheus.CounterVec
	WizardTransitions   *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BookingsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Total number of bookings accepted by the gateway",
				ConstLabels: constLabels,
			},
		),
		EstimatedPrice: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "booking_estimated_price_euros",
				Help:        "Estimated price of accepted bookings",
				ConstLabels: constLabels,
				Buckets:     []float64{100, 250, 500, 1000, 2500, 5000, 10000, 20000},
			},
		),
		QuotesGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "quotes_generated_total",
				Help:        "Total number of generated quotes by format",
				ConstLabels: constLabels,
			},
			[]string{"format"},
		),
		WizardTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "wizard_transitions_total",
				Help:        "Wizard step transitions by step and outcome",
				ConstLabels: constLabels,
			},
			[]string{"step", "outcome"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.EstimatedPrice,
		m.QuotesGenerated,
		m.WizardTransitions,
	)

	return m
}

// ObserveBooking фиксирует принятое бронирование
func (m *Metrics) ObserveBooking(estimatedPrice float64) {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
	m.EstimatedPrice.Observe(estimatedPrice)
}

// ObserveQuote фиксирует сгенерированный девис
func (m *Metrics) ObserveQuote(format string) {
	if m == nil {
		return
	}
	m.QuotesGenerated.WithLabelValues(format).Inc()
}

// ObserveTransition фиксирует попытку перехода мастера бронирования
func (m *Metrics) ObserveTransition(step, outcome string) {
	if m == nil {
		return
	}
	m.WizardTransitions.WithLabelValues(step, outcome).Inc()
}
