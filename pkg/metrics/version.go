package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

func registerBuildInfo(r prometheus.Registerer, version string) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Node build information",
		ConstLabels: prometheus.Labels{
			"version":    version,
			"go_version": runtime.Version(),
		},
	})

	r.MustRegister(g)
	g.Set(1)
}
