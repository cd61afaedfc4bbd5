package publishers

import (
	"sync/atomic"

	"nginx-monitor/internal/models"
)

// SnapshotStore keeps the most recently published Snapshot for readers such as the HTTP layer.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	Publisher
	// Latest returns false until the first Snapshot is published.
	Latest() (*models.Snapshot, bool)
}

type snapshotStore struct {
	latest atomic.Pointer[models.Snapshot]
}

func NewSnapshotStore() SnapshotStore {
	return &snapshotStore{}
}

func (s *snapshotStore) Publish(snapshot *models.Snapshot) {
	if snapshot == nil {
		return
	}
	s.latest.Store(snapshot)
}

func (s *snapshotStore) Latest() (*models.Snapshot, bool) {
	snapshot := s.latest.Load()
	return snapshot, snapshot != nil
}
