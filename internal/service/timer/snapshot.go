package timer

import (
	"time"

	"github.com/oshokin/countdown/internal/domain/countdown"
)

// Snapshot is the observable state published after every change.
type Snapshot struct {
	// SessionID identifies the machine activation.
	SessionID string
	// Operation is the trigger that produced this snapshot.
	Operation Operation
	// State is the countdown record after the operation.
	State countdown.State
	// View is the rendered form of State.
	View countdown.View
	// At is when the snapshot was taken.
	At time.Time
}

// Operation names a trigger processed by the machine.
type Operation string

const (
	OpActivate    Operation = "activate"
	OpSetDuration Operation = "set_duration"
	OpStart       Operation = "start"
	OpPause       Operation = "pause"
	OpReset       Operation = "reset"
	OpTick        Operation = "tick"
)
