package publishers

import (
	"sync"
	"testing"
	"time"

	"nginx-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_Latest_BeforeFirstPublish(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()

	snapshot, ok := store.Latest()
	assert.False(t, ok)
	assert.Nil(t, snapshot)
}

func TestSnapshotStore_Publish_ReplacesPrevious(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	first := models.NewEmptySnapshot(time.Date(2024, 10, 10, 14, 0, 0, 0, time.UTC))
	second := models.NewEmptySnapshot(time.Date(2024, 10, 10, 14, 0, 2, 0, time.UTC))

	store.Publish(first)
	store.Publish(second)
	store.Publish(second)
	store.Publish(nil)

	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Same(t, second, latest)
}

func TestSnapshotStore_ConcurrentPublishAndRead(t *testing.T) {
	t.Parallel()

	store := NewSnapshotStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Publish(models.NewEmptySnapshot(time.Now()))
		}()
		go func() {
			defer wg.Done()
			if snapshot, ok := store.Latest(); ok {
				assert.NotNil(t, snapshot)
			}
		}()
	}
	wg.Wait()

	_, ok := store.Latest()
	assert.True(t, ok)
}
