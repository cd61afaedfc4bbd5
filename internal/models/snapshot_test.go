package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptySnapshot_ListsAreNotNull(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2024, 10, 10, 13, 55, 38, 0, time.UTC)
	snapshot := NewEmptySnapshot(generatedAt)

	assert.Zero(t, snapshot.TotalRequests)
	assert.Equal(t, generatedAt, snapshot.GeneratedAt)

	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"topIps":[]`)
	assert.Contains(t, string(data), `"levels":{}`)
	assert.Contains(t, string(data), `"statusSummary":{"2xx":0,"3xx":0,"4xx":0,"5xx":0}`)
}

func TestStatusSummary_Total(t *testing.T) {
	t.Parallel()

	summary := StatusSummary{Success: 1, Redirect: 2, ClientError: 3, ServerError: 4}
	assert.Equal(t, int64(10), summary.Total())
}
