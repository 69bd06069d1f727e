package escolar

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments of the gateway. Recording is
// best-effort and never influences the outcome a caller observes.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the gateway metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escolar_client_requests_total",
			Help: "Total requests issued to the school service, by method and outcome.",
		}, []string{"method", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "escolar_client_request_duration_seconds",
			Help:    "Latency of requests to the school service.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Duration)
	}
	return m
}

// observe records one finished request. status is the HTTP status code,
// or one of "network"/"timeout" when no response arrived.
func (m *Metrics) observe(method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, status).Inc()
	m.Duration.WithLabelValues(method).Observe(seconds)
}
