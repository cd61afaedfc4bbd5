package sources

import (
	"nginx-monitor/internal/shared/metrics"
)

var (
	metricTailTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "tail_total",
		},
		[]string{"result"},
	)
)
