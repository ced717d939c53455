package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "eigentrust_node"

// NodeMetrics groups all metrics of the node.
type NodeMetrics struct {
	requestMetrics
	computationMetrics
	stateMetrics
}

// NewNodeMetrics creates and registers node metrics in the default
// Prometheus registry.
func NewNodeMetrics(version string) *NodeMetrics {
	return NewNodeMetricsWithRegisterer(prometheus.DefaultRegisterer, version)
}

// NewNodeMetricsWithRegisterer creates node metrics and registers them
// using the given registerer.
func NewNodeMetricsWithRegisterer(r prometheus.Registerer, version string) *NodeMetrics {
	requests := newRequestMetrics()
	requests.register(r)

	computation := newComputationMetrics()
	computation.register(r)

	state := newStateMetrics()
	state.register(r)

	registerBuildInfo(r, version)

	return &NodeMetrics{
		requestMetrics:     requests,
		computationMetrics: computation,
		stateMetrics:       state,
	}
}
