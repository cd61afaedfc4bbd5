package collectors

import (
	"context"
	"time"

	"nginx-monitor/internal/aggregators"
	"nginx-monitor/internal/models"
	"nginx-monitor/internal/parsers"
	"nginx-monitor/internal/shared/configs"
	"nginx-monitor/internal/shared/loggers"
	"nginx-monitor/internal/sources"
)

const (
	logAccess = "access"
	logError  = "error"

	resultParsed  = "parsed"
	resultDropped = "dropped"
)

// Collector runs one collection cycle: tail both logs, parse, aggregate.
// Collect never fails; unreadable logs contribute no records.
//
//go:generate mockgen -source=collector.go -destination=./mocks/collector_mock.go -package=mocks
type Collector interface {
	Collect(ctx context.Context) *models.Snapshot
}

type collector struct {
	sources      configs.SourcesConfig
	lineSource   sources.LineSource
	accessParser parsers.AccessRecordParser
	errorParser  parsers.ErrorRecordParser
	aggregator   aggregators.StatsAggregator
}

func NewCollector(
	sourcesConfig configs.SourcesConfig,
	lineSource sources.LineSource,
	accessParser parsers.AccessRecordParser,
	errorParser parsers.ErrorRecordParser,
	aggregator aggregators.StatsAggregator,
) Collector {
	return &collector{
		sources:      sourcesConfig,
		lineSource:   lineSource,
		accessParser: accessParser,
		errorParser:  errorParser,
		aggregator:   aggregator,
	}
}

func (c *collector) Collect(ctx context.Context) *models.Snapshot {
	start := time.Now()
	logger := loggers.Ctx(ctx)

	accessLines := c.lineSource.Tail(ctx, c.sources.AccessLogPath, c.sources.AccessTailLines)
	errorLines := c.lineSource.Tail(ctx, c.sources.ErrorLogPath, c.sources.ErrorTailLines)

	accessRecords := parseLines(accessLines, c.accessParser.Parse)
	errorRecords := parseLines(errorLines, c.errorParser.Parse)
	observeLines(logAccess, len(accessLines), len(accessRecords))
	observeLines(logError, len(errorLines), len(errorRecords))

	snapshot := c.aggregator.Aggregate(accessRecords, errorRecords)

	elapsed := time.Since(start)
	metricCycleDurationSeconds.Observe(elapsed.Seconds())
	logger.Debug().
		Int("access_lines", len(accessLines)).
		Int("access_records", len(accessRecords)).
		Int("error_lines", len(errorLines)).
		Int("error_records", len(errorRecords)).
		Dur(loggers.FieldDuration, elapsed).
		Msg("collection cycle finished")

	return snapshot
}

// parseLines keeps the records of lines that parse and drops the rest.
func parseLines[T any](lines []string, parse func(line string) (*T, bool)) []*T {
	records := make([]*T, 0, len(lines))
	for _, line := range lines {
		if record, ok := parse(line); ok {
			records = append(records, record)
		}
	}
	return records
}

func observeLines(log string, lines, parsed int) {
	metricLinesTotal.WithLabelValues(log, resultParsed).Add(float64(parsed))
	metricLinesTotal.WithLabelValues(log, resultDropped).Add(float64(lines - parsed))
}
