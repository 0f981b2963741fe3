package app

import (
	"time"

	"github.com/iov-one/vane"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects statistics about delivered messages. A nil Metrics is
// valid and records nothing.
type Metrics struct {
	txs     *prometheus.CounterVec
	events  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetrics creates all collectors and registers them with given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vane",
			Name:      "delivered_txs_total",
			Help:      "Number of delivered messages by path and result.",
		}, []string{"path", "result"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vane",
			Name:      "events_total",
			Help:      "Number of events published by successful messages.",
		}, []string{"type"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vane",
			Name:      "deliver_duration_seconds",
			Help:      "Time spent processing a single message.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"path"}),
	}
	reg.MustRegister(m.txs, m.events, m.latency)
	return m
}

func (m *Metrics) observe(path string, err error, events []vane.Event, took time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.txs.WithLabelValues(path, result).Inc()
	m.latency.WithLabelValues(path).Observe(took.Seconds())
	for _, e := range events {
		m.events.WithLabelValues(e.Type).Inc()
	}
}
