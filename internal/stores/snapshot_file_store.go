package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"nginx-monitor/internal/models"
	"nginx-monitor/internal/shared/filestorages"
)

var ErrSnapshotNotFound = errors.New("no exported snapshot")

const snapshotKey = "snapshot.json"

// SnapshotFileStore writes the latest Snapshot as a JSON document for readers outside the
// process. Each Save replaces the previous document.
//
//go:generate mockgen -source=snapshot_file_store.go -destination=./mocks/snapshot_file_store_mock.go -package=mocks
type SnapshotFileStore interface {
	Save(ctx context.Context, snapshot *models.Snapshot) error
	// Load returns ErrSnapshotNotFound when nothing has been saved yet.
	Load(ctx context.Context) (*models.Snapshot, error)
}

type snapshotFileStore struct {
	fileStorage filestorages.FileStorage
}

func NewSnapshotFileStore(fileStorage filestorages.FileStorage) SnapshotFileStore {
	return &snapshotFileStore{fileStorage: fileStorage}
}

func (s *snapshotFileStore) Save(ctx context.Context, snapshot *models.Snapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.fileStorage.Put(ctx, snapshotKey, bytes.NewReader(jsonData)); err != nil {
		return fmt.Errorf("failed to put snapshot: %w", err)
	}
	return nil
}

func (s *snapshotFileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	readCloser, err := s.fileStorage.Get(ctx, snapshotKey)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snapshot := models.NewEmptySnapshot(time.Time{})
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}
