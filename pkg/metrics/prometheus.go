package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	TripsGenerated     prometheus.Counter
	EnrichmentFailures prometheus.Counter
	GenerationTime     prometheus.Histogram
	CountryCacheMisses prometheus.Counter
	ErrorsCount        *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg. Pass prometheus.DefaultRegisterer
// to expose them through promhttp.Handler().
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TripsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trips_generated_total",
			Help:      "The total number of generated and stored trips",
		}),
		EnrichmentFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_enrichment_failures_total",
			Help:      "The total number of image lookups that failed and were skipped",
		}),
		GenerationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trip_generation_time_seconds",
			Help:      "Time taken to generate a trip end to end",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}),
		CountryCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "country_cache_fetches_total",
			Help:      "The total number of live country list fetches",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}

// NewNopMetrics registers metrics on a throwaway registry
func NewNopMetrics() *Metrics {
	return NewMetrics("test", prometheus.NewRegistry())
}
