package http

import (
	"net/http"

	"nginx-monitor/internal/publishers"
)

type statsHandler struct {
	snapshotStore publishers.SnapshotStore
}

func NewStatsHandler(snapshotStore publishers.SnapshotStore) AppHttpHandler {
	return &statsHandler{
		snapshotStore: snapshotStore,
	}
}

// Handle serves GET /stats with the latest published Snapshot.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, ok := h.snapshotStore.Latest()
	if !ok {
		return errSnapshotNotReady()
	}

	writeJSON(w, http.StatusOK, snapshot)
	return nil
}
