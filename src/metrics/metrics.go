// Package metrics exposes the dashboard's internal counters. The TUI
// itself never shows these; they exist for the optional debug
// listener so a misbehaving poller can be diagnosed without reading
// logs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollRuns counts poll attempts per task.
	PollRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside",
		Subsystem: "poller",
		Name:      "runs_total",
		Help:      "Poll attempts by task.",
	}, []string{"task"})

	// PollFailures counts failed poll attempts per task.
	PollFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside",
		Subsystem: "poller",
		Name:      "failures_total",
		Help:      "Failed poll attempts by task.",
	}, []string{"task"})

	// PollDuration observes how long each poll takes.
	PollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "courtside",
		Subsystem: "poller",
		Name:      "duration_seconds",
		Help:      "Poll duration by task.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"task"})
)
