package schedulers

import (
	"errors"
	"time"
)

// State is the refresh mode of a RefreshScheduler.
type State string

const (
	StateRunning State = "RUNNING"
	StatePaused  State = "PAUSED"
)

// ErrInvalidInterval is returned by SetInterval for non-positive durations.
var ErrInvalidInterval = errors.New("refresh interval must be positive")

// Status is a point-in-time view of a RefreshScheduler.
type Status struct {
	State           State
	Interval        time.Duration
	LastPublishedAt time.Time // zero until the first publish
	CycleInFlight   bool
}

func (s State) toggled() State {
	if s == StatePaused {
		return StateRunning
	}
	return StatePaused
}
