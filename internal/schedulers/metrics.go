package schedulers

import (
	"nginx-monitor/internal/shared/metrics"
)

var (
	metricCyclesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "cycles_total",
		},
		[]string{"trigger", "outcome"},
	)

	metricTicksSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "ticks_skipped_total",
		},
		[]string{"reason"},
	)
)
