package parsers

import (
	"regexp"
	"strings"

	"nginx-monitor/internal/models"
)

const (
	maxErrorMessageLen = 80
	maxRawLineLen      = 120
)

// severityPattern finds the first bracketed nginx severity anywhere in the line, e.g.
//
//	2024/01/01 00:00:00 [crit] 1234#0: *1 connection refused
var severityPattern = regexp.MustCompile(`\[(emerg|alert|crit|error|warn|notice|info|debug)\]`)

// ErrorRecordParser turns one error-log line into an ErrorRecord.
type ErrorRecordParser interface {
	// Parse returns false when the line carries no recognised [level] token.
	Parse(line string) (*models.ErrorRecord, bool)
}

type errorRecordParser struct{}

func NewErrorRecordParser() ErrorRecordParser {
	return &errorRecordParser{}
}

func (p *errorRecordParser) Parse(line string) (*models.ErrorRecord, bool) {
	loc := severityPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, false
	}

	level, err := models.ParseErrorLevel(line[loc[2]:loc[3]])
	if err != nil {
		return nil, false
	}
	record := &models.ErrorRecord{
		Level:   level,
		Message: truncateRunes(strings.TrimSpace(line[loc[1]:]), maxErrorMessageLen),
	}
	if level.IsCritical() {
		record.RawLine = truncateRunes(line, maxRawLineLen)
	}
	return record, true
}

// truncateRunes cuts s to at most n characters without splitting a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
