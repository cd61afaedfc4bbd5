package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"nginx-monitor/internal/models"
	"nginx-monitor/internal/shared/filestorages"
	"nginx-monitor/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleSnapshot() *models.Snapshot {
	snapshot := models.NewEmptySnapshot(time.Date(2024, 10, 10, 13, 55, 38, 0, time.UTC))
	snapshot.TotalRequests = 3
	snapshot.UniqueIPs = 2
	snapshot.TotalBandwidth = 150
	snapshot.TopIPs = []models.RankedEntry[string]{{Key: "10.0.0.1", Count: 2}, {Key: "10.0.0.2", Count: 1}}
	snapshot.StatusCodes = []models.RankedEntry[int]{{Key: 404, Count: 2}, {Key: 200, Count: 1}}
	snapshot.StatusSummary = models.StatusSummary{Success: 1, ClientError: 2}
	snapshot.Hourly = []models.HourlyBucket{{Hour: "13", Count: 3}}
	snapshot.Errors.Levels[models.LevelCrit] = 1
	snapshot.Errors.RecentCritical = []models.CriticalLine{{Level: models.LevelCrit, Line: "[crit] disk full"}}
	return snapshot
}

func TestSnapshotFileStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	fileStore := NewSnapshotFileStore(fileStorage)
	ctx := context.Background()

	_, err = fileStore.Load(ctx)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	first := sampleSnapshot()
	require.NoError(t, fileStore.Save(ctx, first))

	second := sampleSnapshot()
	second.TotalRequests = 42
	second.GeneratedAt = first.GeneratedAt.Add(2 * time.Second)
	require.NoError(t, fileStore.Save(ctx, second))

	loaded, err := fileStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), loaded.TotalRequests)
	assert.True(t, second.GeneratedAt.Equal(loaded.GeneratedAt))
	assert.Equal(t, second.TopIPs, loaded.TopIPs)
	assert.Equal(t, second.StatusSummary, loaded.StatusSummary)
	assert.Equal(t, second.Errors.Levels, loaded.Errors.Levels)
	assert.Equal(t, second.Errors.RecentCritical, loaded.Errors.RecentCritical)
	assert.NotNil(t, loaded.TopPages)
}

func TestSnapshotFileStore_Save_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	fileStore := NewSnapshotFileStore(mockFileStorage)
	putErr := errors.New("disk full")

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "snapshot.json", gomock.Any()).
		Return(putErr)

	err := fileStore.Save(context.Background(), sampleSnapshot())
	require.Error(t, err)
	assert.ErrorIs(t, err, putErr)
	assert.Contains(t, err.Error(), "failed to put snapshot")
}

func TestSnapshotFileStore_Load_GetError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	fileStore := NewSnapshotFileStore(mockFileStorage)
	getErr := errors.New("permission denied")

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "snapshot.json").
		Return(nil, getErr)

	snapshot, err := fileStore.Load(context.Background())
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, getErr)
	assert.NotErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotFileStore_Load_CorruptFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	fileStore := NewSnapshotFileStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "snapshot.json").
		Return(io.NopCloser(strings.NewReader(`{"totalRequests":`)), nil)

	snapshot, err := fileStore.Load(context.Background())
	assert.Nil(t, snapshot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal snapshot")
}
