package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream call outcomes
const (
	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeBadStatus      = "bad_status"
	OutcomeDecodeError    = "decode_error"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	requestsTotal    *prometheus.CounterVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cwa_upstream_requests_total",
				Help: "Total number of CWA API calls by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cwa_upstream_request_duration_seconds",
				Help:    "CWA API call duration",
				Buckets: []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5, 10},
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_requests_total",
				Help: "Total number of forecast requests by response status",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(m.upstreamTotal, m.upstreamDuration, m.requestsTotal)
	return m
}

// ObserveUpstream records one CWA API call
func (m *Metrics) ObserveUpstream(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(outcome).Inc()
	m.upstreamDuration.Observe(took.Seconds())
}

// ObserveRequest records the status served for a forecast request
func (m *Metrics) ObserveRequest(status int) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// UpstreamTotal exposes the upstream counter for tests
func (m *Metrics) UpstreamTotal() *prometheus.CounterVec {
	return m.upstreamTotal
}

// RequestsTotal exposes the request counter for tests
func (m *Metrics) RequestsTotal() *prometheus.CounterVec {
	return m.requestsTotal
}
