package metrics

import "github.com/prometheus/client_golang/prometheus"

const stateSubsystem = "state"

// Node health states.
const (
	HealthStarting int32 = iota
	HealthReady
	HealthShuttingDown
)

type stateMetrics struct {
	healthCheck  prometheus.Gauge
	attestations prometheus.Gauge
}

func newStateMetrics() stateMetrics {
	return stateMetrics{
		healthCheck: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: stateSubsystem,
			Name:      "health",
			Help:      "Current node state",
		}),
		attestations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: stateSubsystem,
			Name:      "attestations",
			Help:      "Number of attestations taken by the last computation",
		}),
	}
}

func (m stateMetrics) register(r prometheus.Registerer) {
	r.MustRegister(m.healthCheck)
	r.MustRegister(m.attestations)
}

func (m stateMetrics) SetHealth(s int32) {
	m.healthCheck.Set(float64(s))
}

func (m stateMetrics) SetAttestations(n int) {
	m.attestations.Set(float64(n))
}
