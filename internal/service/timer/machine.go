package timer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"github.com/oshokin/countdown/internal/domain/countdown"
	"github.com/oshokin/countdown/internal/logger"
	"github.com/oshokin/countdown/internal/tick"
)

// ErrClosed is returned by triggers sent to a deactivated machine.
var ErrClosed = errors.New("countdown machine is closed")

// Lifecycle states and events of the tick subscription.
const (
	stateIdle    = "idle"
	stateRunning = "running"
	statePaused  = "paused"

	eventStart = "start"
	eventPause = "pause"
	eventStop  = "stop"
)

// Options configures a Machine.
type Options struct {
	// TickInterval is the period between ticks; defaults to one second.
	TickInterval time.Duration
	// InitialDuration is applied before the loop starts when positive.
	InitialDuration int
}

// command is a trigger waiting to be applied on the event loop.
type command struct {
	op     Operation
	reduce func(countdown.State) countdown.State
	reply  chan Snapshot
}

// Machine is a live countdown activation.
type Machine struct {
	// ctx carries the session logger; its cancellation deactivates the machine.
	ctx context.Context
	// sessionID identifies this activation in logs and snapshots.
	sessionID string
	// source creates the tick subscription while running.
	source *tick.Source

	commands chan command
	ticks    chan time.Time
	quit     chan struct{}
	done     chan struct{}
	quitOnce sync.Once

	// Loop-owned fields.
	state     countdown.State
	lifecycle *fsm.FSM
	sub       *tick.Subscription

	// mu protects observers, last and closed.
	mu        sync.Mutex
	observers []chan Snapshot
	last      Snapshot
	closed    bool
}

// New activates a countdown. The machine stays active until Close is called
// or ctx is cancelled.
func New(ctx context.Context, opts *Options) *Machine {
	if opts == nil {
		opts = new(Options)
	}

	sessionID := uuid.NewString()
	ctx = logger.WithKV(logger.WithName(ctx, "countdown"), "session_id", sessionID)

	m := &Machine{
		ctx:       ctx,
		sessionID: sessionID,
		source:    tick.NewSource(opts.TickInterval),
		commands:  make(chan command),
		ticks:     make(chan time.Time),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		state:     countdown.State{}.SetSeconds(opts.InitialDuration),
	}

	m.lifecycle = fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{stateIdle, statePaused}, Dst: stateRunning},
			{Name: eventPause, Src: []string{stateRunning}, Dst: statePaused},
			{Name: eventStop, Src: []string{stateRunning, statePaused}, Dst: stateIdle},
		},
		fsm.Callbacks{
			"enter_" + stateRunning: func(context.Context, *fsm.Event) { m.acquire() },
			"leave_" + stateRunning: func(context.Context, *fsm.Event) { m.release() },
		},
	)

	m.last = m.snapshot(OpActivate)

	logger.DebugKV(ctx, "Countdown activated", "tick_interval", m.source.Interval(), "duration", m.state.Duration)

	go m.run()

	return m
}

// SessionID returns the activation identifier.
func (m *Machine) SessionID() string {
	return m.sessionID
}

// SetDuration applies raw duration input. Invalid input is absorbed:
// the returned snapshot shows the unchanged state and no error is reported.
func (m *Machine) SetDuration(ctx context.Context, raw string) (Snapshot, error) {
	return m.send(ctx, OpSetDuration, func(s countdown.State) countdown.State {
		next := s.SetDuration(raw)
		if next == s {
			logger.DebugKV(m.ctx, "Duration input ignored", "input", raw)
		}

		return next
	})
}

// SetSeconds applies a numeric duration with the same rules as SetDuration.
func (m *Machine) SetSeconds(ctx context.Context, seconds int) (Snapshot, error) {
	return m.send(ctx, OpSetDuration, func(s countdown.State) countdown.State {
		return s.SetSeconds(seconds)
	})
}

// Start starts or resumes the countdown if time is left.
func (m *Machine) Start(ctx context.Context) (Snapshot, error) {
	return m.send(ctx, OpStart, countdown.State.Start)
}

// Pause freezes a running countdown.
func (m *Machine) Pause(ctx context.Context) (Snapshot, error) {
	return m.send(ctx, OpPause, countdown.State.Pause)
}

// Reset stops the countdown and restores the last set duration.
func (m *Machine) Reset(ctx context.Context) (Snapshot, error) {
	return m.send(ctx, OpReset, countdown.State.Reset)
}

// Snapshot returns the latest published state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last
}

// Subscribe registers an observer channel receiving a Snapshot after every
// state change. Delivery never blocks the machine: a full channel misses
// the update. The channel is closed when the machine is deactivated.
func (m *Machine) Subscribe(buffer int) <-chan Snapshot {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Snapshot, buffer)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		close(ch)

		return ch
	}

	m.observers = append(m.observers, ch)

	return ch
}

// Done is closed once the machine has been deactivated.
func (m *Machine) Done() <-chan struct{} {
	return m.done
}

// Close deactivates the machine, releasing the tick subscription and
// closing all observer channels. It blocks until the loop has exited.
func (m *Machine) Close() {
	m.quitOnce.Do(func() {
		close(m.quit)
	})

	<-m.done
}

func (m *Machine) send(ctx context.Context, op Operation, reduce func(countdown.State) countdown.State) (Snapshot, error) {
	cmd := command{
		op:     op,
		reduce: reduce,
		reply:  make(chan Snapshot, 1),
	}

	select {
	case m.commands <- cmd:
	case <-m.done:
		return Snapshot{}, fmt.Errorf("%s: %w", op, ErrClosed)
	case <-ctx.Done():
		return Snapshot{}, fmt.Errorf("%s: %w", op, ctx.Err())
	}

	// The loop always replies to an accepted command.
	return <-cmd.reply, nil
}

func (m *Machine) run() {
	defer close(m.done)
	defer m.deactivate()

	for {
		select {
		case <-m.quit:
			return
		case <-m.ctx.Done():
			return
		case cmd := <-m.commands:
			cmd.reply <- m.apply(cmd.op, cmd.reduce)
		case <-m.ticks:
			m.apply(OpTick, countdown.State.Tick)
		}
	}
}

// apply runs a reducer, moves the lifecycle to the new run state and
// publishes the result if anything changed.
func (m *Machine) apply(op Operation, reduce func(countdown.State) countdown.State) Snapshot {
	prev := m.state
	m.state = reduce(prev)

	if err := m.transition(prev.RunState, m.state.RunState); err != nil {
		logger.ErrorKV(m.ctx, "Lifecycle transition failed", "operation", op, "error", err)
	}

	snap := m.snapshot(op)
	if m.state == prev {
		return snap
	}

	logger.DebugKV(m.ctx, "Countdown updated",
		"operation", op,
		"run_state", m.state.RunState,
		"remaining", snap.View.FormattedRemaining,
	)

	if m.state.Exhausted && op == OpTick {
		logger.InfoKV(m.ctx, "Countdown finished", "duration", m.state.Duration)
	}

	m.publish(snap)

	return snap
}

// transition fires the lifecycle event leading from one run state to another.
func (m *Machine) transition(from, to countdown.RunState) error {
	if from == to {
		return nil
	}

	var event string

	switch to {
	case countdown.Running:
		event = eventStart
	case countdown.Paused:
		event = eventPause
	default:
		event = eventStop
	}

	if err := m.lifecycle.Event(context.WithoutCancel(m.ctx), event); err != nil {
		return fmt.Errorf("%s -> %s: %w", from, to, err)
	}

	return nil
}

// acquire replaces the tick subscription with a fresh one.
func (m *Machine) acquire() {
	m.sub.Cancel()
	m.sub = m.source.Subscribe(m.ticks)

	logger.Debug(m.ctx, "Tick subscription acquired")
}

// release cancels the tick subscription if one is live.
func (m *Machine) release() {
	if m.sub == nil {
		return
	}

	m.sub.Cancel()
	m.sub = nil

	logger.Debug(m.ctx, "Tick subscription released")
}

func (m *Machine) deactivate() {
	m.release()

	m.mu.Lock()
	observers := m.observers
	m.observers = nil
	m.closed = true
	m.mu.Unlock()

	for _, ch := range observers {
		close(ch)
	}

	logger.Debug(m.ctx, "Countdown deactivated")
}

func (m *Machine) snapshot(op Operation) Snapshot {
	return Snapshot{
		SessionID: m.sessionID,
		Operation: op,
		State:     m.state,
		View:      m.state.View(),
		At:        time.Now(),
	}
}

func (m *Machine) publish(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last = snap

	for _, ch := range m.observers {
		select {
		case ch <- snap:
		default:
		}
	}
}
