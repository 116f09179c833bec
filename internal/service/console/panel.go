package console

import (
	"context"

	"github.com/oshokin/countdown/internal/service/timer"
)

// Panel adapts presentation events to machine triggers.
type Panel struct {
	// machine is the countdown activation driven by the panel.
	machine *timer.Machine
	// draft is the text currently typed into the duration field.
	draft string
}

// NewPanel binds a panel to machine.
func NewPanel(machine *timer.Machine) *Panel {
	return &Panel{
		machine: machine,
	}
}

// OnDurationInput records the raw text of the duration field.
func (p *Panel) OnDurationInput(raw string) {
	p.draft = raw
}

// Draft returns the text last passed to OnDurationInput.
func (p *Panel) Draft() string {
	return p.draft
}

// OnSetClicked applies the draft as the new duration.
func (p *Panel) OnSetClicked(ctx context.Context) (timer.Snapshot, error) {
	return p.machine.SetDuration(ctx, p.draft)
}

// OnStartClicked starts or resumes the countdown.
func (p *Panel) OnStartClicked(ctx context.Context) (timer.Snapshot, error) {
	return p.machine.Start(ctx)
}

// OnPauseClicked pauses the countdown.
func (p *Panel) OnPauseClicked(ctx context.Context) (timer.Snapshot, error) {
	return p.machine.Pause(ctx)
}

// OnResetClicked restores the last set duration.
func (p *Panel) OnResetClicked(ctx context.Context) (timer.Snapshot, error) {
	return p.machine.Reset(ctx)
}
