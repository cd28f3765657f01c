package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetricsProvider_Counters(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(VoteOperationsTotal.WithLabelValues("cast", "true"))
	p.IncrementVoteOperations("cast", true)
	assert.Equal(t, before+1, testutil.ToFloat64(VoteOperationsTotal.WithLabelValues("cast", "true")))

	beforeHits := testutil.ToFloat64(SessionCacheHitsTotal)
	p.IncrementCacheHits()
	assert.Equal(t, beforeHits+1, testutil.ToFloat64(SessionCacheHitsTotal))
}

func TestPrometheusMetricsProvider_ServiceHealth(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	p.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(ServiceHealth))

	p.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(ServiceHealth))
}
