package aggregators

import (
	"sort"
	"strings"
	"time"

	"nginx-monitor/internal/models"
	"nginx-monitor/internal/parsers"
)

const (
	topIPsLimit        = 15
	topPagesLimit      = 15
	statusCodesLimit   = 10
	methodsLimit       = 10
	topReferersLimit   = 10
	topAgentsLimit     = 10
	topPlatformsLimit  = 10
	bandwidthLimit     = 15
	recentCriticalSize = 5
	commonErrorsLimit  = 10
)

// StatsAggregator folds the records of one collection cycle into a Snapshot.
//
// Aggregate keeps no state between calls: the same records and the same clock reading always
// yield an equal Snapshot.
//
//go:generate mockgen -source=stats_aggregator.go -destination=./mocks/stats_aggregator_mock.go -package=mocks
type StatsAggregator interface {
	Aggregate(accessRecords []*models.AccessRecord, errorRecords []*models.ErrorRecord) *models.Snapshot
}

type statsAggregator struct {
	agentClassifier    parsers.AgentClassifier
	platformClassifier parsers.PlatformClassifier
	now                func() time.Time
}

func NewStatsAggregator(agentClassifier parsers.AgentClassifier, platformClassifier parsers.PlatformClassifier, now func() time.Time) StatsAggregator {
	return &statsAggregator{
		agentClassifier:    agentClassifier,
		platformClassifier: platformClassifier,
		now:                now,
	}
}

// accessCounters holds every counter of a single Aggregate call.
type accessCounters struct {
	ips             *orderedCounter[string]
	pages           *orderedCounter[string]
	statuses        *orderedCounter[int]
	methods         *orderedCounter[string]
	referers        *orderedCounter[string]
	agents          *orderedCounter[string]
	platforms       *orderedCounter[string]
	hourly          *orderedCounter[string]
	bytesByPage     *orderedCounter[string]
	requestsByPage  *orderedCounter[string]
	platformByAgent map[string]parsers.Platform
	totalBandwidth  int64
	botRequests     int64
}

func newAccessCounters() *accessCounters {
	return &accessCounters{
		ips:             newOrderedCounter[string](),
		pages:           newOrderedCounter[string](),
		statuses:        newOrderedCounter[int](),
		methods:         newOrderedCounter[string](),
		referers:        newOrderedCounter[string](),
		agents:          newOrderedCounter[string](),
		platforms:       newOrderedCounter[string](),
		hourly:          newOrderedCounter[string](),
		bytesByPage:     newOrderedCounter[string](),
		requestsByPage:  newOrderedCounter[string](),
		platformByAgent: make(map[string]parsers.Platform),
	}
}

func (a *statsAggregator) Aggregate(accessRecords []*models.AccessRecord, errorRecords []*models.ErrorRecord) *models.Snapshot {
	snapshot := models.NewEmptySnapshot(a.now())
	if len(accessRecords) == 0 {
		return snapshot
	}

	counters := newAccessCounters()
	for _, record := range accessRecords {
		a.count(counters, record)
	}

	snapshot.TotalRequests = int64(len(accessRecords))
	snapshot.UniqueIPs = int64(counters.ips.Len())
	snapshot.TotalBandwidth = counters.totalBandwidth
	snapshot.TopIPs = counters.ips.TopK(topIPsLimit)
	snapshot.TopPages = counters.pages.TopK(topPagesLimit)
	snapshot.StatusCodes = counters.statuses.TopK(statusCodesLimit)
	snapshot.StatusSummary = summarizeStatuses(counters.statuses)
	snapshot.Methods = counters.methods.TopK(methodsLimit)
	snapshot.TopReferers = counters.referers.TopK(topReferersLimit)
	snapshot.TopAgents = counters.agents.TopK(topAgentsLimit)
	snapshot.TopPlatforms = counters.platforms.TopK(topPlatformsLimit)
	snapshot.BotRequests = counters.botRequests
	snapshot.Hourly = hourlyBuckets(counters.hourly)
	snapshot.BandwidthByPage = bandwidthEntries(counters.bytesByPage, counters.requestsByPage)
	snapshot.Errors = summarizeErrors(errorRecords)

	return snapshot
}

func (a *statsAggregator) count(c *accessCounters, record *models.AccessRecord) {
	c.ips.Inc(record.IP)
	c.pages.Inc(record.Path)
	c.statuses.Inc(record.Status)
	c.methods.Inc(record.Method)

	if record.HasReferer() {
		c.referers.Inc(record.Referer)
	}

	c.agents.Inc(a.agentClassifier.Classify(record.Agent))

	platform, ok := c.platformByAgent[record.Agent]
	if !ok {
		platform = a.platformClassifier.Classify(record.Agent)
		c.platformByAgent[record.Agent] = platform
	}
	c.platforms.Inc(platform.OS)
	if platform.Bot {
		c.botRequests++
	}

	if hour, ok := hourOf(record.Timestamp); ok {
		c.hourly.Inc(hour)
	}

	c.totalBandwidth = saturatingAdd(c.totalBandwidth, record.Size)
	c.bytesByPage.Add(record.Path, record.Size)
	c.requestsByPage.Inc(record.Path)
}

// hourOf extracts HH from a "DD/Mon/YYYY:HH:MM:SS zone" timestamp. The hour is the token after
// the first colon and must be 00-23; anything else is reported as not found.
func hourOf(timestamp string) (string, bool) {
	_, rest, found := strings.Cut(timestamp, ":")
	if !found {
		return "", false
	}
	hour, _, _ := strings.Cut(rest, ":")
	// both bytes are digits, so the string comparison orders like the number
	if len(hour) != 2 || !isDigit(hour[0]) || !isDigit(hour[1]) || hour > "23" {
		return "", false
	}
	return hour, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func summarizeStatuses(statuses *orderedCounter[int]) models.StatusSummary {
	var summary models.StatusSummary
	statuses.Each(func(status int, count int64) {
		switch {
		case status >= 200 && status < 300:
			summary.Success += count
		case status >= 300 && status < 400:
			summary.Redirect += count
		case status >= 400 && status < 500:
			summary.ClientError += count
		case status >= 500 && status < 600:
			summary.ServerError += count
		}
	})
	return summary
}

func hourlyBuckets(hourly *orderedCounter[string]) []models.HourlyBucket {
	buckets := make([]models.HourlyBucket, 0, hourly.Len())
	hourly.Each(func(hour string, count int64) {
		buckets = append(buckets, models.HourlyBucket{Hour: hour, Count: count})
	})
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Hour < buckets[j].Hour
	})
	return buckets
}

// bandwidthEntries ranks paths by bytes served. Both counters are keyed by path.
func bandwidthEntries(bytesByPage, requestsByPage *orderedCounter[string]) []models.BandwidthEntry {
	ranked := bytesByPage.TopK(bandwidthLimit)
	entries := make([]models.BandwidthEntry, len(ranked))
	for i, entry := range ranked {
		entries[i] = models.BandwidthEntry{
			Path:     entry.Key,
			Bytes:    entry.Count,
			Requests: requestsByPage.Get(entry.Key),
		}
	}
	return entries
}

func summarizeErrors(records []*models.ErrorRecord) models.ErrorSummary {
	levels := make(map[models.ErrorLevel]int64)
	messages := newOrderedCounter[string]()
	var critical []models.CriticalLine

	for _, record := range records {
		levels[record.Level]++
		if !record.Level.IsError() {
			continue
		}
		messages.Inc(record.Message)
		if record.Level.IsCritical() {
			critical = append(critical, models.CriticalLine{Level: record.Level, Line: record.RawLine})
		}
	}

	if len(critical) > recentCriticalSize {
		critical = critical[len(critical)-recentCriticalSize:]
	}
	recent := make([]models.CriticalLine, len(critical))
	copy(recent, critical)

	return models.ErrorSummary{
		Levels:         levels,
		RecentCritical: recent,
		CommonErrors:   messages.TopK(commonErrorsLimit),
	}
}
