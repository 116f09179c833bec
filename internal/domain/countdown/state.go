package countdown

// RunState is the three-way status of a countdown.
type RunState int

const (
	// Idle is the initial state and the state after SetDuration, Reset or exhaustion.
	Idle RunState = iota
	// Running consumes ticks.
	Running
	// Paused keeps the remaining time until Start resumes it.
	Paused
)

// String returns the lower-case name of the run state.
func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is the countdown record. Values are never mutated in place;
// every reducer returns a new State.
type State struct {
	// Duration is the last accepted countdown length in seconds.
	Duration int
	// Remaining is the time left in seconds, never negative.
	Remaining int
	// RunState governs whether ticks are consumed.
	RunState RunState
	// Exhausted is set by the tick that brought Remaining to zero
	// and cleared by any other operation.
	Exhausted bool
}

// SetDuration applies raw duration input. Input that does not parse to a
// strictly positive integer leaves the state unchanged.
func (s State) SetDuration(raw string) State {
	seconds, err := ParseDuration(raw)
	if err != nil {
		return s
	}

	return s.SetSeconds(seconds)
}

// SetSeconds is SetDuration for an already numeric value.
func (s State) SetSeconds(seconds int) State {
	if seconds <= 0 {
		return s
	}

	return State{
		Duration:  seconds,
		Remaining: seconds,
		RunState:  Idle,
	}
}

// Start moves an idle or paused countdown with time left to Running.
func (s State) Start() State {
	if s.Remaining <= 0 || s.RunState == Running {
		return s
	}

	s.RunState = Running
	s.Exhausted = false

	return s
}

// Pause freezes a running countdown.
func (s State) Pause() State {
	if s.RunState != Running {
		return s
	}

	s.RunState = Paused

	return s
}

// Reset restores Remaining to the last accepted Duration and stops the countdown.
func (s State) Reset() State {
	return State{
		Duration:  s.Duration,
		Remaining: s.Duration,
		RunState:  Idle,
	}
}

// Tick consumes one elapsed second. Ticks outside Running are ignored.
// The tick that reaches zero moves the countdown back to Idle.
func (s State) Tick() State {
	if s.RunState != Running {
		return s
	}

	if s.Remaining <= 1 {
		s.Remaining = 0
		s.RunState = Idle
		s.Exhausted = true

		return s
	}

	s.Remaining--

	return s
}

// IsPaused reports whether the countdown is paused.
func (s State) IsPaused() bool {
	return s.RunState == Paused
}
