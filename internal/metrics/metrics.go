package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	MessagesStored    *prometheus.CounterVec
	EmailOutcomes     *prometheus.CounterVec
	ActiveConnections prometheus.Gauge
	RelayedMessages   prometheus.Counter
}

// NewMetrics creates new Prometheus metrics on the default registry
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates new Prometheus metrics on the given registry
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MessagesStored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_backend_messages_stored_total",
			Help: "Total number of stored contact messages by storage tier",
		}, []string{"tier"}),
		EmailOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_backend_email_outcomes_total",
			Help: "Total number of notification attempts by outcome",
		}, []string{"outcome"}),
		ActiveConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_backend_websocket_connections",
			Help: "Number of currently connected websocket sessions",
		}),
		RelayedMessages: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_backend_relayed_messages_total",
			Help: "Total number of messages broadcast through the relay",
		}),
	}
}
