package parsers

import (
	"testing"

	"nginx-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessRecordParser_Parse_CombinedLine(t *testing.T) {
	t.Parallel()

	parser := NewAccessRecordParser()
	line := `203.0.113.7 - frank [10/Oct/2024:13:55:36 +0000] "GET /index.html?x=1 HTTP/1.1" 200 2326 "https://example.com/start" "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"`

	record, ok := parser.Parse(line)
	require.True(t, ok)

	expected := &models.AccessRecord{
		IP:        "203.0.113.7",
		Timestamp: "10/Oct/2024:13:55:36 +0000",
		Method:    "GET",
		Path:      "/index.html?x=1",
		Protocol:  "HTTP/1.1",
		Status:    200,
		Size:      2326,
		Referer:   "https://example.com/start",
		Agent:     "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	}
	assert.Equal(t, expected, record)
	assert.True(t, record.HasReferer())
}

func TestAccessRecordParser_Parse_NumericFallbacks(t *testing.T) {
	t.Parallel()

	parser := NewAccessRecordParser()

	tests := []struct {
		name           string
		status         string
		size           string
		expectedStatus int
		expectedSize   int64
	}{
		{name: "dash size", status: "304", size: "-", expectedStatus: 304, expectedSize: 0},
		{name: "non numeric size", status: "200", size: "abc", expectedStatus: 200, expectedSize: 0},
		{name: "negative size", status: "200", size: "-5", expectedStatus: 200, expectedSize: 0},
		{name: "large size", status: "200", size: "5368709120", expectedStatus: 200, expectedSize: 5368709120},
		{name: "status overflow", status: "99999999999", size: "10", expectedStatus: 0, expectedSize: 10},
		{name: "zero values", status: "0", size: "0", expectedStatus: 0, expectedSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line := `10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "GET / HTTP/1.1" ` + tt.status + " " + tt.size + ` "-" "curl/8.0"`
			record, ok := parser.Parse(line)
			require.True(t, ok, "record must be kept when only numeric fields are malformed")
			assert.Equal(t, tt.expectedStatus, record.Status)
			assert.Equal(t, tt.expectedSize, record.Size)
			assert.GreaterOrEqual(t, record.Status, 0)
			assert.GreaterOrEqual(t, record.Size, int64(0))
		})
	}
}

func TestAccessRecordParser_Parse_TrailingContentIgnored(t *testing.T) {
	t.Parallel()

	parser := NewAccessRecordParser()
	line := `10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "POST /api HTTP/2.0" 201 15 "-" "python-requests/2.31" 0.005 "upstream=10.1.1.1"`

	record, ok := parser.Parse(line)
	require.True(t, ok)
	assert.Equal(t, "POST", record.Method)
	assert.Equal(t, "/api", record.Path)
	assert.Equal(t, "HTTP/2.0", record.Protocol)
	assert.Equal(t, "python-requests/2.31", record.Agent)
	assert.False(t, record.HasReferer())
}

func TestAccessRecordParser_Parse_NoMatch(t *testing.T) {
	t.Parallel()

	parser := NewAccessRecordParser()

	lines := map[string]string{
		"empty":                 "",
		"whitespace":            "   ",
		"truncated":             `10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "GET / HTTP/1.1" 200`,
		"missing agent":         `10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "GET / HTTP/1.1" 200 10 "-"`,
		"non numeric status":    `10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "GET / HTTP/1.1" OK 10 "-" "curl/8.0"`,
		"request without path":  `10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "-" 400 0 "-" "-"`,
		"binary garbage":        "\x00\x01\x02\xff\xfe garbage \x7f",
		"error log line":        "2024/01/01 00:00:00 [crit] 1234#0: *1 connection refused",
		"extra leading columns": `host1 app 10.0.0.1 - - [01/Jan/2024:00:00:01 +0000] "GET / HTTP/1.1" 200 10 "-" "curl/8.0"`,
	}

	for name, line := range lines {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			record, ok := parser.Parse(line)
			assert.False(t, ok)
			assert.Nil(t, record)
		})
	}
}
