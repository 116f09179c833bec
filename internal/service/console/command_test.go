package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/countdown/internal/config"
	"github.com/oshokin/countdown/internal/domain/countdown"
	"github.com/oshokin/countdown/internal/service/timer"
)

// TestPanel_RaisesEvents drives a machine through the presentation events.
func TestPanel_RaisesEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := timer.New(ctx, nil)
	defer m.Close()

	p := NewPanel(m)

	// Typing alone changes nothing.
	p.OnDurationInput("90")
	require.Equal(t, "90", p.Draft())
	require.Equal(t, "00:00", m.Snapshot().View.FormattedRemaining)

	snap, err := p.OnSetClicked(ctx)
	require.NoError(t, err)
	require.Equal(t, "01:30", snap.View.FormattedRemaining)

	p.OnDurationInput("abc")
	snap, err = p.OnSetClicked(ctx)
	require.NoError(t, err)
	require.Equal(t, 90, snap.State.Duration)

	snap, err = p.OnStartClicked(ctx)
	require.NoError(t, err)
	require.Equal(t, countdown.Running, snap.State.RunState)

	snap, err = p.OnPauseClicked(ctx)
	require.NoError(t, err)
	require.Equal(t, countdown.LabelResume, snap.View.StartLabel)

	snap, err = p.OnResetClicked(ctx)
	require.NoError(t, err)
	require.Equal(t, countdown.Idle, snap.State.RunState)
	require.Equal(t, 90, snap.State.Remaining)
}

// TestRun_CountsDownAfterEndOfInput pipes a start command and lets the countdown finish.
func TestRun_CountsDownAfterEndOfInput(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	synctest.Test(t, func(t *testing.T) {
		var out bytes.Buffer

		err := Run(context.Background(), &Options{
			ConfigPath: cfgPath,
			Duration:   "3",
			In:         strings.NewReader("start\n"),
			Out:        &out,
		})
		require.NoError(t, err)

		want := strings.Join([]string{
			"00:03  [Start]",
			"00:03  [Start]",
			"00:02  [Start]",
			"00:01  [Start]",
			"00:00  [Start]",
			"\aTime's up!",
		}, "\n") + "\n"
		require.Equal(t, want, out.String())
	})
}

// TestRun_Commands exercises the command set without letting time pass.
func TestRun_Commands(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	input := strings.Join([]string{
		"help",
		"input 90",
		"set",
		"start",
		"pause",
		"status",
		"bogus",
		"45",
		"reset",
		"quit",
		"start",
	}, "\n")

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
		In:         strings.NewReader(input),
		Out:        &out,
	})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "Commands:")
	require.Contains(t, text, "01:30  [Start]")
	require.Contains(t, text, "01:30  [Resume]")
	require.Contains(t, text, `unknown command "bogus"`)
	require.Contains(t, text, "00:45  [Start]")
	require.True(t, strings.HasSuffix(text, "00:45  [Start]\n"))
}

// TestRun_UsesConfig applies the configured default duration and tick interval.
func TestRun_UsesConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		TickInterval:    100 * time.Millisecond,
		DefaultDuration: 2,
	}))

	synctest.Test(t, func(t *testing.T) {
		var out bytes.Buffer

		err := Run(context.Background(), &Options{
			ConfigPath: cfgPath,
			In:         strings.NewReader("start\n"),
			Out:        &out,
		})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out.String(), "00:02  [Start]\n"))
		require.Contains(t, out.String(), "Time's up!")
	})
}

// TestRun_CancelStopsSession ends an interactive session on context cancellation.
func TestRun_CancelStopsSession(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "missing.yaml")

	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		pr, pw := io.Pipe()

		var out bytes.Buffer

		done := make(chan error, 1)

		go func() {
			done <- Run(ctx, &Options{
				ConfigPath: cfgPath,
				Duration:   "10",
				In:         pr,
				Out:        &out,
			})
		}()

		_, err := io.WriteString(pw, "start\n")
		require.NoError(t, err)

		time.Sleep(2500 * time.Millisecond)
		cancel()

		require.NoError(t, <-done)
		require.NoError(t, pw.Close())

		require.Contains(t, out.String(), "00:08  [Start]")
		require.NotContains(t, out.String(), "00:07")
	})
}

// TestRun_Errors reports bad settings and log levels.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		LogLevel:   "loud",
		In:         strings.NewReader(""),
		Out:        io.Discard,
	})
	require.ErrorIs(t, err, errUnknownLogLevel)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("default_duration: -1\n"), config.DefaultFilePermissions))

	err = Run(context.Background(), &Options{
		ConfigPath: broken,
		In:         strings.NewReader(""),
		Out:        io.Discard,
	})
	require.Error(t, err)
}
