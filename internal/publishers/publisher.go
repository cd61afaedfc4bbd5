package publishers

import (
	"nginx-monitor/internal/models"
)

// Publisher receives every Snapshot the scheduler produces.
// Publish is called on the scheduler's goroutine and must not block.
//
//go:generate mockgen -source=publisher.go -destination=./mocks/publisher_mock.go -package=mocks
type Publisher interface {
	Publish(snapshot *models.Snapshot)
}

type fanout struct {
	publishers []Publisher
}

// NewFanout returns a Publisher that hands each Snapshot to every publisher in order.
func NewFanout(publishers ...Publisher) Publisher {
	return &fanout{publishers: publishers}
}

func (f *fanout) Publish(snapshot *models.Snapshot) {
	for _, publisher := range f.publishers {
		publisher.Publish(snapshot)
	}
}
