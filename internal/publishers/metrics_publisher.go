package publishers

import (
	"nginx-monitor/internal/models"
)

const (
	class2xx = "2xx"
	class3xx = "3xx"
	class4xx = "4xx"
	class5xx = "5xx"
)

type metricsPublisher struct{}

// NewMetricsPublisher mirrors the headline numbers of each Snapshot into Prometheus gauges.
func NewMetricsPublisher() Publisher {
	return &metricsPublisher{}
}

func (p *metricsPublisher) Publish(snapshot *models.Snapshot) {
	if snapshot == nil {
		return
	}

	metricTotalRequests.Set(float64(snapshot.TotalRequests))
	metricUniqueIPs.Set(float64(snapshot.UniqueIPs))
	metricTotalBandwidthBytes.Set(float64(snapshot.TotalBandwidth))
	metricBotRequests.Set(float64(snapshot.BotRequests))

	metricStatusClassRequests.WithLabelValues(class2xx).Set(float64(snapshot.StatusSummary.Success))
	metricStatusClassRequests.WithLabelValues(class3xx).Set(float64(snapshot.StatusSummary.Redirect))
	metricStatusClassRequests.WithLabelValues(class4xx).Set(float64(snapshot.StatusSummary.ClientError))
	metricStatusClassRequests.WithLabelValues(class5xx).Set(float64(snapshot.StatusSummary.ServerError))

	// Every level is written so a level that disappears from the tail drops back to zero.
	for _, level := range models.ErrorLevels {
		metricErrorLevelEntries.WithLabelValues(string(level)).Set(float64(snapshot.Errors.Levels[level]))
	}

	metricGeneratedAtSeconds.Set(float64(snapshot.GeneratedAt.Unix()))
}
