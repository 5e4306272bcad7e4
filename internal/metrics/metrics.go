// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BoxersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boxing",
		Name:      "boxers_created_total",
		Help:      "Number of boxers created.",
	})

	FightsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boxing",
		Name:      "fights_total",
		Help:      "Number of fights simulated.",
	})

	FightDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "boxing",
		Name:      "fight_duration_seconds",
		Help:      "Wall time to simulate a fight, including the random.org call.",
		Buckets:   prometheus.DefBuckets,
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "boxing",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status class.",
	}, []string{"route", "status"})
)
