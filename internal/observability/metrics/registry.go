package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track catalog operations
var (
	// ArticlesPublishedTotal counts articles successfully registered
	ArticlesPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_articles_published_total",
			Help: "Total number of articles registered in the catalog",
		},
	)

	// ValidationFailuresTotal counts rejected writes by entity kind and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_validation_failures_total",
			Help: "Total number of rejected writes by entity and field",
		},
		[]string{"entity", "field"},
	)

	// EntitiesTotal tracks the current number of entities by kind
	EntitiesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_entities",
			Help: "Current number of entities in the catalog by kind",
		},
		[]string{"kind"},
	)

	// OperationDuration measures use-case latency in seconds
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Catalog operation duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"operation"},
	)
)
