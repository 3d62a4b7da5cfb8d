package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SubmissionsTotal       *prometheus.CounterVec
	EnrichmentLookupErrors prometheus.Counter
	ActiveSessions         prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		SubmissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_submissions_total",
				Help: "Booking submissions by result",
			},
			[]string{"service", "result"},
		),
		EnrichmentLookupErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "enrichment_lookup_errors_total",
				Help: "Failed enrichment lookups (non-fatal)",
			},
		),
		ActiveSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "booking_flow_active_sessions",
				Help: "Number of live booking flow sessions",
			},
		),
	}
}

// ServiceName возвращает имя сервиса для label'ов
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// IncSubmission инкрементирует счетчик отправок бронирований
// result: "success" | "failure" | "rejected"
func (m *Metrics) IncSubmission(result string) {
	m.SubmissionsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// IncEnrichmentLookupError инкрементирует счетчик неудачных lookup'ов
func (m *Metrics) IncEnrichmentLookupError() {
	m.EnrichmentLookupErrors.Inc()
}
