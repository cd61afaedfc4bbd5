package publishers

import (
	"nginx-monitor/internal/shared/metrics"
)

var (
	metricTotalRequests = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "total_requests",
		},
	)

	metricUniqueIPs = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "unique_ips",
		},
	)

	metricTotalBandwidthBytes = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "total_bandwidth_bytes",
		},
	)

	metricBotRequests = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "bot_requests",
		},
	)

	metricStatusClassRequests = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "status_class_requests",
		},
		[]string{"class"},
	)

	metricErrorLevelEntries = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "error_level_entries",
		},
		[]string{"level"},
	)

	metricGeneratedAtSeconds = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSnapshot,
			Name:      "generated_at_seconds",
		},
	)
)

var (
	metricExportWritesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "writes_total",
		},
		[]string{"result"},
	)

	metricExportReplacedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "replaced_total",
			Help:      "Snapshots overwritten by a newer one before they were written.",
		},
	)
)
