package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oshokin/countdown/internal/config"
	"github.com/oshokin/countdown/internal/domain/countdown"
	"github.com/oshokin/countdown/internal/logger"
	"github.com/oshokin/countdown/internal/service/timer"
)

// Options controls a console session.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Duration is raw duration input applied before reading commands.
	Duration string
	// In is the command source; defaults to os.Stdin.
	In io.Reader
	// Out receives the rendered countdown; defaults to os.Stdout.
	Out io.Writer
}

var (
	// errUnknownLogLevel is returned for an unparsable --log-level value.
	errUnknownLogLevel = errors.New("unknown log level")
	// errQuit stops the command loop.
	errQuit = errors.New("quit")
)

// Run activates a countdown and drives it from line commands until quit,
// end of input or ctx cancellation. At end of input a running countdown is
// left to finish first, so `echo start | countdown 10` counts to zero.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "console")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, levelName)
	}

	logger.SetLevel(level)

	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	machine := timer.New(ctx, &timer.Options{
		TickInterval:    cfg.TickInterval,
		InitialDuration: cfg.DefaultDuration,
	})
	defer machine.Close()

	var (
		panel   = NewPanel(machine)
		display = &screen{out: out}
		drawn   = make(chan struct{})
	)

	logger.InfoKV(ctx, "Countdown session started",
		"session_id", machine.SessionID(),
		"tick_interval", cfg.TickInterval,
	)

	if opts.Duration != "" {
		panel.OnDurationInput(opts.Duration)

		if _, err := panel.OnSetClicked(ctx); err != nil {
			return err
		}
	}

	// Nothing changes the machine between subscribing and the first render.
	updates := machine.Subscribe(cfg.ObserverBuffer)
	display.render(machine.Snapshot())

	go func() {
		defer close(drawn)

		for snap := range updates {
			display.render(snap)
		}
	}()

	err = readCommands(ctx, in, panel, machine, display)

	machine.Close()
	<-drawn

	logger.Info(ctx, "Countdown session finished")

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// readCommands dispatches input lines until quit, EOF or cancellation.
func readCommands(ctx context.Context, in io.Reader, panel *Panel, machine *timer.Machine, display *screen) error {
	lines := make(chan string)
	stop := make(chan struct{})
	readErr := make(chan error, 1)

	defer close(stop)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}

		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-machine.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read commands: %w", err)
				}

				return awaitIdle(ctx, machine)
			}

			if err := dispatch(ctx, line, panel, machine, display); err != nil {
				return err
			}
		}
	}
}

// dispatch executes one command line.
func dispatch(ctx context.Context, line string, panel *Panel, machine *timer.Machine, display *screen) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	var err error

	switch strings.ToLower(name) {
	case "":
		return nil
	case "input":
		panel.OnDurationInput(arg)
	case "set":
		if arg != "" {
			panel.OnDurationInput(arg)
		}

		_, err = panel.OnSetClicked(ctx)
	case "start", "resume", "s":
		_, err = panel.OnStartClicked(ctx)
	case "pause", "p":
		_, err = panel.OnPauseClicked(ctx)
	case "reset", "r":
		_, err = panel.OnResetClicked(ctx)
	case "status":
		display.render(machine.Snapshot())
	case "help", "?":
		display.println(usage)
	case "quit", "exit", "q":
		return errQuit
	default:
		if _, parseErr := countdown.ParseDuration(name); parseErr == nil {
			panel.OnDurationInput(name)
			_, err = panel.OnSetClicked(ctx)

			break
		}

		display.println(fmt.Sprintf("unknown command %q, type help", name))
	}

	if errors.Is(err, timer.ErrClosed) {
		return errQuit
	}

	return err
}

// awaitIdle blocks while the countdown is running.
func awaitIdle(ctx context.Context, machine *timer.Machine) error {
	watch := machine.Subscribe(1)

	for machine.Snapshot().State.RunState == countdown.Running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-watch:
			if !ok {
				return nil
			}
		}
	}

	return nil
}
