package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goliatone/go-passfield/pkg/strength"
)

// Metrics holds the Prometheus collectors for the strength endpoint.
type Metrics struct {
	Classifications *prometheus.CounterVec
	Rejected        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	m := &Metrics{
		Classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passfield_classifications_total",
			Help: "Total number of password classifications by resulting strength",
		}, []string{"strength"}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passfield_rejected_requests_total",
			Help: "Total number of strength requests rejected before classification",
		}, []string{"reason"}),
	}
	for _, s := range strength.Strengths() {
		m.Classifications.WithLabelValues(s.String())
	}
	return m
}

// ObserveClassification counts one classification.
func (m *Metrics) ObserveClassification(s strength.Strength) {
	m.Classifications.WithLabelValues(s.String()).Inc()
}

// ObserveRejected counts one rejected request.
func (m *Metrics) ObserveRejected(reason string) {
	m.Rejected.WithLabelValues(reason).Inc()
}
