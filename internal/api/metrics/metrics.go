// Package metrics defines and registers all custom Prometheus metrics for
// the returns dashboard. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at import time via
// promauto; the scrape endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "returns_dashboard"

// LoadsTotal counts completed load sequences.
// Label:
//   - result: "ok" (snapshot replaced) or "error" (payload unavailable, snapshot cleared)
var LoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loads_total",
		Help:      "Total number of export load sequences, by result.",
	},
	[]string{"result"},
)

// LoadDuration measures how long a successful load takes end-to-end,
// including both document fetches and the visibility pre-filter.
var LoadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "load_duration_seconds",
		Help:      "Duration of successful export loads.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// RecordsVisible tracks the size of the current in-memory snapshot after
// the visibility pre-filter.
var RecordsVisible = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "records_visible",
		Help:      "Number of visible records in the current snapshot.",
	},
)

// RefreshThrottledTotal counts manual refreshes rejected by the throttle.
var RefreshThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_throttled_total",
		Help:      "Total number of manual refreshes rejected by the refresh throttle.",
	},
)
