package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"pokereview/pkg/metrics"
)

func TestProbeMirrorsRepositoryOperationsIntoCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewAppMetrics(registry)
	probe := NewOtelProbe("pokereview-test", appMetrics)

	ctx := context.Background()

	probe.RecordRepositoryOperation(ctx, "insert", "category", time.Millisecond, nil)
	probe.RecordRepositoryOperation(ctx, "insert", "category", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, gatherCounter(t, registry, "database_operations_total"))

	// Failed operations stay out of the entity counter.
	assert.Equal(t, 1.0, gatherCounter(t, registry, "entity_operations_total"))
}

func TestProbeWithoutMetricsSink(t *testing.T) {
	probe := NewOtelProbe("pokereview-test", nil)

	assert.NotPanics(t, func() {
		probe.RecordRepositoryOperation(context.Background(), "insert", "category", time.Millisecond, nil)
	})
}

func gatherCounter(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	assert.NoError(t, err)

	total := 0.0

	for _, family := range families {
		if family.GetName() != name {
			continue
		}

		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}

	return total
}
