package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors of one Server.
type metrics struct {
	gesturesTotal *prometheus.CounterVec
	dialogsTotal  prometheus.Gauge
	dialogsOpen   prometheus.Gauge
	clients       prometheus.Gauge
	broadcasts    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		gesturesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gestures_total",
			Help:      "Gestures received, by kind and whether they changed the registry",
		}, []string{"kind", "result"}),

		dialogsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dialogs",
			Help:      "Dialogs created in this session, open or closed",
		}),

		dialogsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dialogs_open",
			Help:      "Dialogs currently visible",
		}),

		clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_clients",
			Help:      "Connected websocket clients",
		}),

		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Snapshots broadcast to websocket clients",
		}),
	}
}

func (m *metrics) recordGesture(kind string, applied bool) {
	result := "applied"
	if !applied {
		result = "ignored"
	}
	m.gesturesTotal.WithLabelValues(kind, result).Inc()
}

func (m *metrics) setDialogs(total, open int) {
	m.dialogsTotal.Set(float64(total))
	m.dialogsOpen.Set(float64(open))
}
