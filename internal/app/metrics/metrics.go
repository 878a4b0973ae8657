package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	VerificationOutcomes *prometheus.CounterVec
	LookupDuration       prometheus.Histogram
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers against the given registerer so tests can use an
// isolated registry.
func NewWith(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		VerificationOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "insurance_verification_outcomes_total",
			Help: "Total number of verification calls by outcome",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "insurance_verification_lookup_duration_seconds",
			Help:    "Duration of record store lookups in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementOutcome(outcome string) {
	m.VerificationOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveLookup(start time.Time) {
	m.LookupDuration.Observe(time.Since(start).Seconds())
}
