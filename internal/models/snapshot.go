package models

import "time"

// Snapshot is the result of one collection cycle. It is built once by the aggregator and never
// mutated afterwards, so it can be shared freely between goroutines. Each cycle produces a new
// Snapshot that fully replaces the previous one.
//
// Example JSON (lists shortened):
//
//	{
//	  "totalRequests": 3,
//	  "uniqueIps": 2,
//	  "totalBandwidth": 150,
//	  "topIps": [{"key": "10.0.0.1", "count": 2}, {"key": "10.0.0.2", "count": 1}],
//	  "topPages": [{"key": "/missing", "count": 2}, {"key": "/", "count": 1}],
//	  "statusCodes": [{"key": 404, "count": 2}, {"key": 200, "count": 1}],
//	  "statusSummary": {"2xx": 1, "3xx": 0, "4xx": 2, "5xx": 0},
//	  "hourly": [{"hour": "13", "count": 3}],
//	  "bandwidthByPage": [{"path": "/", "bytes": 100, "requests": 1}],
//	  "errors": {"levels": {"crit": 1}, "recentCritical": [...], "commonErrors": [...]},
//	  "generatedAt": "2024-10-10T13:55:38Z"
//	}
type Snapshot struct {
	TotalRequests   int64                 `json:"totalRequests"`
	UniqueIPs       int64                 `json:"uniqueIps"`
	TotalBandwidth  int64                 `json:"totalBandwidth"`
	TopIPs          []RankedEntry[string] `json:"topIps"`
	TopPages        []RankedEntry[string] `json:"topPages"`
	StatusCodes     []RankedEntry[int]    `json:"statusCodes"`
	StatusSummary   StatusSummary         `json:"statusSummary"`
	Methods         []RankedEntry[string] `json:"methods"`
	TopReferers     []RankedEntry[string] `json:"topReferers"`
	TopAgents       []RankedEntry[string] `json:"topAgents"`
	TopPlatforms    []RankedEntry[string] `json:"topPlatforms"`
	BotRequests     int64                 `json:"botRequests"`
	Hourly          []HourlyBucket        `json:"hourly"`
	BandwidthByPage []BandwidthEntry      `json:"bandwidthByPage"`
	Errors          ErrorSummary          `json:"errors"`
	GeneratedAt     time.Time             `json:"generatedAt"`
}

// RankedEntry is one row of a top-K table.
type RankedEntry[K comparable] struct {
	Key   K     `json:"key"`
	Count int64 `json:"count"`
}

// StatusSummary sums requests per status class. Codes outside [200,600) are in none of them.
type StatusSummary struct {
	Success     int64 `json:"2xx"`
	Redirect    int64 `json:"3xx"`
	ClientError int64 `json:"4xx"`
	ServerError int64 `json:"5xx"`
}

// Total returns the number of requests that fell into one of the four classes.
func (s StatusSummary) Total() int64 {
	return s.Success + s.Redirect + s.ClientError + s.ServerError
}

// HourlyBucket counts requests for one hour of day ("00".."23").
type HourlyBucket struct {
	Hour  string `json:"hour"`
	Count int64  `json:"count"`
}

// BandwidthEntry is the bytes served for one path together with its request count.
type BandwidthEntry struct {
	Path     string `json:"path"`
	Bytes    int64  `json:"bytes"`
	Requests int64  `json:"requests"`
}

// ErrorSummary condenses the error log tail.
type ErrorSummary struct {
	Levels         map[ErrorLevel]int64  `json:"levels"`
	RecentCritical []CriticalLine        `json:"recentCritical"`
	CommonErrors   []RankedEntry[string] `json:"commonErrors"`
}

// CriticalLine is a crit-or-worse error line kept verbatim (truncated) for display.
type CriticalLine struct {
	Level ErrorLevel `json:"level"`
	Line  string     `json:"line"`
}

// NewEmptySnapshot returns a Snapshot with zero counters and empty, non-nil lists.
func NewEmptySnapshot(generatedAt time.Time) *Snapshot {
	return &Snapshot{
		TopIPs:          []RankedEntry[string]{},
		TopPages:        []RankedEntry[string]{},
		StatusCodes:     []RankedEntry[int]{},
		Methods:         []RankedEntry[string]{},
		TopReferers:     []RankedEntry[string]{},
		TopAgents:       []RankedEntry[string]{},
		TopPlatforms:    []RankedEntry[string]{},
		Hourly:          []HourlyBucket{},
		BandwidthByPage: []BandwidthEntry{},
		Errors: ErrorSummary{
			Levels:         make(map[ErrorLevel]int64),
			RecentCritical: []CriticalLine{},
			CommonErrors:   []RankedEntry[string]{},
		},
		GeneratedAt: generatedAt,
	}
}
