package parsers

import (
	"regexp"
	"strconv"

	"nginx-monitor/internal/models"
)

// combinedLogPattern matches the nginx/Apache combined log format:
//
//	$remote_addr - $remote_user [$time_local] "$request" $status $body_bytes_sent "$http_referer" "$http_user_agent"
//
// Anything after the user agent is ignored.
var combinedLogPattern = regexp.MustCompile(
	`^(\S+)\s+` + // client address
		`\S+\s+` + // ident
		`\S+\s+` + // user
		`\[([^\]]+)\]\s+` + // timestamp
		`"(\S+)\s+` + // method
		`(\S+)\s+` + // path
		`([^"]+)"\s+` + // protocol
		`(\d+)\s+` + // status
		`(\S+)\s+` + // size
		`"([^"]*)"\s+` + // referer
		`"([^"]*)"`, // user agent
)

const (
	groupIP = iota + 1
	groupTimestamp
	groupMethod
	groupPath
	groupProtocol
	groupStatus
	groupSize
	groupReferer
	groupAgent
)

// AccessRecordParser turns one access-log line into an AccessRecord.
type AccessRecordParser interface {
	// Parse returns false when the line does not have the combined log layout.
	Parse(line string) (*models.AccessRecord, bool)
}

type accessRecordParser struct{}

func NewAccessRecordParser() AccessRecordParser {
	return &accessRecordParser{}
}

func (p *accessRecordParser) Parse(line string) (*models.AccessRecord, bool) {
	m := combinedLogPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	return &models.AccessRecord{
		IP:        m[groupIP],
		Timestamp: m[groupTimestamp],
		Method:    m[groupMethod],
		Path:      m[groupPath],
		Protocol:  m[groupProtocol],
		Status:    int(parseNonNegative(m[groupStatus], 32)),
		Size:      parseNonNegative(m[groupSize], 64),
		Referer:   m[groupReferer],
		Agent:     m[groupAgent],
	}, true
}

// parseNonNegative reads a decimal field, returning 0 for "-", garbage, overflow or negatives.
func parseNonNegative(s string, bitSize int) int64 {
	if s == "-" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
