package calendar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifedash_client",
			Name:      "refreshes_total",
			Help:      "Domain fetches issued during calendar refreshes.",
		},
		[]string{"domain"},
	)

	refreshFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifedash_client",
			Name:      "refresh_failures_total",
			Help:      "Domain fetches that failed after retries.",
		},
		[]string{"domain"},
	)

	reschedulesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifedash_client",
			Name:      "reschedules_total",
			Help:      "Reschedule attempts by item type and outcome.",
		},
		[]string{"type", "outcome"},
	)
)
