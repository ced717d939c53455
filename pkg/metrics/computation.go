package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	computationSubsystem = "eigentrust"

	resultLabelKey = "result"
)

type computationMetrics struct {
	epoch        prometheus.Gauge
	participants prometheus.Gauge
	duration     prometheus.Histogram
	runs         *prometheus.CounterVec
}

func newComputationMetrics() computationMetrics {
	return computationMetrics{
		epoch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: computationSubsystem,
			Name:      "epoch",
			Help:      "Last computed epoch",
		}),
		participants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: computationSubsystem,
			Name:      "participants",
			Help:      "Number of participants in the last computation",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: computationSubsystem,
			Name:      "run_duration_seconds",
			Help:      "Global trust computation time including certification",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: computationSubsystem,
			Name:      "runs_total",
			Help:      "Number of computation runs by result",
		}, []string{resultLabelKey}),
	}
}

func (m computationMetrics) register(r prometheus.Registerer) {
	r.MustRegister(m.epoch)
	r.MustRegister(m.participants)
	r.MustRegister(m.duration)
	r.MustRegister(m.runs)
}

// SetEpoch updates epoch metric.
func (m computationMetrics) SetEpoch(epoch uint64) {
	m.epoch.Set(float64(epoch))
}

// SetParticipants updates participants metric.
func (m computationMetrics) SetParticipants(n int) {
	m.participants.Set(float64(n))
}

// AddRun records finished computation run.
func (m computationMetrics) AddRun(d time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}

	m.duration.Observe(d.Seconds())
	m.runs.With(prometheus.Labels{resultLabelKey: result}).Inc()
}
