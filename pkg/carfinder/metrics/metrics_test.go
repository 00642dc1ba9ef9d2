package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveSearch("nl", 120*time.Millisecond, nil)
	m.ObserveSearch("nl", 80*time.Millisecond, nil)
	m.ObserveSearch("nl", time.Second, errors.New("upstream down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("nl", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("nl", OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.searchDuration))
}

func TestMetrics_ObserveRecommendation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveRecommendation("de")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues("de")))
}

func TestMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := New(reg)
	require.NoError(t, err)
	second, err := New(reg)
	require.NoError(t, err)

	first.ObserveRecommendation("nl")
	second.ObserveRecommendation("nl")
	assert.Equal(t, 2.0, testutil.ToFloat64(first.recommendations.WithLabelValues("nl")))
}

func TestMetrics_UnknownMarketsShareALabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveSearch("junk-1", time.Millisecond, nil)
	m.ObserveSearch("junk-2", time.Millisecond, nil)
	m.ObserveRecommendation("fr")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues(MarketUnsupported, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues(MarketUnsupported)))

	count, err := testutil.GatherAndCount(reg, "carfinder_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
