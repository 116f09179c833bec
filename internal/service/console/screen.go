package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/oshokin/countdown/internal/service/timer"
)

const bell = "\a"

// screen serialises writes from the renderer and the command loop.
type screen struct {
	mu  sync.Mutex
	out io.Writer
}

// render prints one snapshot.
func (s *screen) render(snap timer.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.out, "%s  [%s]\n", snap.View.FormattedRemaining, snap.View.StartLabel)

	if snap.Operation == timer.OpTick && snap.State.Exhausted {
		_, _ = fmt.Fprintln(s.out, bell+"Time's up!")
	}
}

// println prints a free-form line.
func (s *screen) println(args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintln(s.out, args...)
}

const usage = `Commands:
  input <seconds>   type a duration without applying it
  set [seconds]     apply the typed (or given) duration
  <seconds>         shorthand for "set <seconds>"
  start | resume    start or resume the countdown
  pause             pause the countdown
  reset             restore the last set duration
  status            show the current time
  help              show this help
  quit              leave`
