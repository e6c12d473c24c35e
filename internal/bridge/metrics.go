package bridge

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the bridge's Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	Connections    prometheus.Gauge
	Messages       *prometheus.CounterVec
	Navigations    *prometheus.CounterVec
	SessionsOpened prometheus.Counter
	StaleEvents    prometheus.Counter
}

// NewMetrics creates bridge metrics on their own registry, alongside the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cuoral_bridge_connections",
			Help: "Number of connected renderers",
		}),
		Messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cuoral_bridge_messages_total",
			Help: "Client messages received, by type",
		}, []string{"type"}),
		Navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cuoral_bridge_navigations_total",
			Help: "Navigation gate decisions, by outcome",
		}, []string{"decision"}),
		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "cuoral_bridge_sessions_opened_total",
			Help: "Chat sessions mounted by opening the modal",
		}),
		StaleEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "cuoral_bridge_stale_events_total",
			Help: "Surface events dropped because their session was closed",
		}),
	}
}

// Handler serves the metrics in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
