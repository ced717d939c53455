package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/nspcc-dev/eigentrust-node/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewNodeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	var m *metrics.NodeMetrics

	require.NotPanics(t, func() {
		m = metrics.NewNodeMetricsWithRegisterer(reg, "any_version")
	})

	m.SetEpoch(10)
	m.SetParticipants(3)
	m.AddRun(time.Second, true)
	m.AddRun(time.Second, false)
	m.AddRequest("/score", http.StatusOK, time.Millisecond)
	m.SetHealth(metrics.HealthReady)
	m.SetAttestations(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]struct{}, len(families))
	for _, f := range families {
		names[f.GetName()] = struct{}{}
	}

	for _, name := range []string{
		"eigentrust_node_build_info",
		"eigentrust_node_eigentrust_epoch",
		"eigentrust_node_eigentrust_runs_total",
		"eigentrust_node_requests_total",
		"eigentrust_node_state_health",
	} {
		require.Contains(t, names, name)
	}

	require.Panics(t, func() {
		metrics.NewNodeMetricsWithRegisterer(reg, "any_version")
	})
}
