// Package metrics exposes Prometheus instrumentation for searches and
// recommendations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"

	// MarketUnsupported labels every market without a catalog.
	MarketUnsupported = "unsupported"
)

// Metrics records search and recommendation activity
type Metrics struct {
	searches        *prometheus.CounterVec
	searchDuration  *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
}

// New registers the collectors on reg. If reg is nil, the default registerer
// is used. Collectors already registered are reused.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carfinder_searches_total",
		Help: "Total number of listing searches",
	}, []string{"market", "outcome"})
	searchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "carfinder_search_duration_seconds",
		Help:    "Time spent retrieving listings from a source",
		Buckets: prometheus.DefBuckets,
	}, []string{"market"})
	recommendations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "carfinder_recommendations_total",
		Help: "Total number of questionnaire recommendations served",
	}, []string{"market"})

	var err error
	if searches, err = register(reg, searches); err != nil {
		return nil, err
	}
	if searchDuration, err = register(reg, searchDuration); err != nil {
		return nil, err
	}
	if recommendations, err = register(reg, recommendations); err != nil {
		return nil, err
	}
	return &Metrics{searches: searches, searchDuration: searchDuration, recommendations: recommendations}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveSearch records one search against market and how long it took.
func (m *Metrics) ObserveSearch(market string, elapsed time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	label := marketLabel(market)
	m.searches.WithLabelValues(label, outcome).Inc()
	m.searchDuration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// ObserveRecommendation records one served recommendation.
func (m *Metrics) ObserveRecommendation(market string) {
	m.recommendations.WithLabelValues(marketLabel(market)).Inc()
}

// marketLabel bounds the market label to the supported markets.
func marketLabel(market string) string {
	for _, m := range dal.Markets() {
		if string(m) == market {
			return market
		}
	}
	return MarketUnsupported
}
