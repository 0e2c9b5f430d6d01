package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveConfigure(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test")

	m.ObserveConfigure("Gateway", OutcomeSuccess, 0.002)
	m.ObserveConfigure("Gateway", OutcomeSuccess, 0.001)
	m.ObserveConfigure("Gateway", OutcomeFailure, 0)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.configuresTotal.WithLabelValues("Gateway", OutcomeSuccess)))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.configuresTotal.WithLabelValues("Gateway", OutcomeFailure)))
}

func TestMetrics_SetActiveConfiguration(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test")

	m.SetActiveConfiguration("Gateway", "browsing", "rev-1")
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.activeConfig.WithLabelValues("Gateway", "browsing", "rev-1")))

	// A new revision replaces the previous one entirely.
	m.SetActiveConfiguration("Gateway", "browsing", "rev-2")
	assert.Equal(t, 1, testutil.CollectAndCount(m.activeConfig))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.activeConfig.WithLabelValues("Gateway", "browsing", "rev-2")))
}

func TestMetrics_SetRegisteredDependencies(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test")
	m.SetRegisteredDependencies("HANDLER", 3)
	m.SetRegisteredDependencies("MIDDLEWARE", 2)

	assert.Equal(t, float64(3),
		testutil.ToFloat64(m.registeredDeps.WithLabelValues("HANDLER")))
	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.registeredDeps.WithLabelValues("MIDDLEWARE")))
}

func TestMetrics_DefaultNamespace(t *testing.T) {
	t.Parallel()

	m := NewMetrics("")
	m.ObserveConfigure("Gateway", OutcomeSuccess, 0.001)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "fragway_configures_total" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test")
	m.ObserveConfigure("Storefront", OutcomeSuccess, 0.001)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_configures_total")
}
