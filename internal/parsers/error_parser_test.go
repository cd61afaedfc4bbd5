package parsers

import (
	"strings"
	"testing"

	"nginx-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRecordParser_Parse_Critical(t *testing.T) {
	t.Parallel()

	parser := NewErrorRecordParser()
	line := "2024/01/01 00:00:00 [crit] 1234#0: *1 connection refused"

	record, ok := parser.Parse(line)
	require.True(t, ok)
	assert.Equal(t, &models.ErrorRecord{
		Level:   models.LevelCrit,
		Message: "1234#0: *1 connection refused",
		RawLine: line,
	}, record)
}

func TestErrorRecordParser_Parse_Levels(t *testing.T) {
	t.Parallel()

	parser := NewErrorRecordParser()

	for _, level := range models.ErrorLevels {
		t.Run(string(level), func(t *testing.T) {
			t.Parallel()

			record, ok := parser.Parse("2024/01/01 00:00:00 [" + string(level) + "] 42#0: something happened")
			require.True(t, ok)
			assert.Equal(t, level, record.Level)
			assert.Equal(t, "42#0: something happened", record.Message)
			if level.IsCritical() {
				assert.NotEmpty(t, record.RawLine)
			} else {
				assert.Empty(t, record.RawLine, "raw line is only kept for critical levels")
			}
		})
	}
}

func TestErrorRecordParser_Parse_FirstTokenWins(t *testing.T) {
	t.Parallel()

	parser := NewErrorRecordParser()
	record, ok := parser.Parse("2024/01/01 00:00:00 [warn] upstream said [crit] in body")
	require.True(t, ok)
	assert.Equal(t, models.LevelWarn, record.Level)
	assert.Equal(t, "upstream said [crit] in body", record.Message)
}

func TestErrorRecordParser_Parse_Truncation(t *testing.T) {
	t.Parallel()

	parser := NewErrorRecordParser()
	line := "2024/01/01 00:00:00 [emerg] " + strings.Repeat("x", 200)

	record, ok := parser.Parse(line)
	require.True(t, ok)
	assert.Len(t, record.Message, 80)
	assert.Len(t, record.RawLine, 120)
	assert.Equal(t, line[:120], record.RawLine)
}

func TestErrorRecordParser_Parse_TruncationKeepsRunesIntact(t *testing.T) {
	t.Parallel()

	parser := NewErrorRecordParser()
	record, ok := parser.Parse("[alert] " + strings.Repeat("é", 100))
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("é", 80), record.Message)
}

func TestErrorRecordParser_Parse_NoMatch(t *testing.T) {
	t.Parallel()

	parser := NewErrorRecordParser()

	lines := []string{
		"",
		"2024/01/01 00:00:00 connection refused",
		"2024/01/01 00:00:00 [CRIT] upper case is not canonical",
		"2024/01/01 00:00:00 [fatal] unknown level",
		"2024/01/01 00:00:00 crit without brackets",
	}

	for _, line := range lines {
		record, ok := parser.Parse(line)
		assert.False(t, ok, "line %q", line)
		assert.Nil(t, record)
	}
}
