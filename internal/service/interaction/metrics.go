package interaction

import (
	"github.com/Domenick1991/kiosk/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	events         *prometheus.CounterVec
	degradedEvents *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_interactions_total",
			Help: "Interaction events by type and publish result.",
		}, []string{"type", "result"}),
		degradedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_interactions_degraded_total",
			Help: "Interaction events sent with the reduced payload.",
		}, []string{"type"}),
	}
	if reg != nil {
		reg.MustRegister(m.events, m.degradedEvents)
	}
	return m
}

func (m *Metrics) sent(t domain.InteractionType) {
	if m != nil {
		m.events.WithLabelValues(string(t), "sent").Inc()
	}
}

func (m *Metrics) failed(t domain.InteractionType) {
	if m != nil {
		m.events.WithLabelValues(string(t), "failed").Inc()
	}
}

func (m *Metrics) degraded(t domain.InteractionType) {
	if m != nil {
		m.degradedEvents.WithLabelValues(string(t)).Inc()
	}
}
