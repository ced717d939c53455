package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	requestSubsystem = "requests"

	routeLabelKey  = "route"
	statusLabelKey = "status"
)

type requestMetrics struct {
	duration *prometheus.HistogramVec
	count    *prometheus.CounterVec
}

func newRequestMetrics() requestMetrics {
	return requestMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: requestSubsystem,
			Name:      "duration_seconds",
			Help:      "HTTP request handling time",
		}, []string{routeLabelKey}),
		count: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: requestSubsystem,
			Name:      "total",
			Help:      "Number of handled HTTP requests",
		}, []string{routeLabelKey, statusLabelKey}),
	}
}

func (m requestMetrics) register(r prometheus.Registerer) {
	r.MustRegister(m.duration)
	r.MustRegister(m.count)
}

// AddRequest records the handled request.
func (m requestMetrics) AddRequest(route string, status int, d time.Duration) {
	m.duration.With(prometheus.Labels{routeLabelKey: route}).Observe(d.Seconds())
	m.count.With(prometheus.Labels{
		routeLabelKey:  route,
		statusLabelKey: strconv.Itoa(status),
	}).Inc()
}
