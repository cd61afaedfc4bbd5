package collectors

import (
	"nginx-monitor/internal/shared/metrics"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "lines_total",
		},
		[]string{"log", "result"},
	)

	metricCycleDurationSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCollector,
			Name:      "cycle_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
