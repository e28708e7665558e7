package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			var total float64
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			return total
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestRecordProgressWrite(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordProgressWrite()
	c.RecordProgressWrite()

	assert.Equal(t, float64(2), counterValue(t, reg, "pathway_progress_writes_total"))
}

func TestRecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest("GET", "/api/tasks", 200, 5*time.Millisecond)
	c.RecordHTTPRequest("POST", "/api/tasks", 201, 7*time.Millisecond)

	assert.Equal(t, float64(2), counterValue(t, reg, "pathway_http_requests_total"))
}

func TestRecordLoginOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin("success")
	c.RecordLogin("failure")
	c.RecordLogin("failure")

	assert.Equal(t, float64(3), counterValue(t, reg, "pathway_logins_total"))
}
