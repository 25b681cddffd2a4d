package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpstream(OutcomeOK, 120*time.Millisecond)
	m.ObserveUpstream(OutcomeOK, 80*time.Millisecond)
	m.ObserveUpstream(OutcomeBadStatus, 10*time.Millisecond)

	if got := testutil.ToFloat64(m.UpstreamTotal().WithLabelValues(OutcomeOK)); got != 2 {
		t.Fatalf("ok count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.UpstreamTotal().WithLabelValues(OutcomeBadStatus)); got != 1 {
		t.Fatalf("bad_status count = %v, want 1", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(http.StatusOK)
	m.ObserveRequest(http.StatusNotFound)
	m.ObserveRequest(http.StatusNotFound)

	if got := testutil.ToFloat64(m.RequestsTotal().WithLabelValues("404")); got != 2 {
		t.Fatalf("404 count = %v, want 2", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveUpstream(OutcomeOK, time.Second)
	m.ObserveRequest(http.StatusOK)
}
