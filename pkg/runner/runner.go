package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/ports"
)

// ErrInterrupted is returned when an OS signal stops the loop.
var ErrInterrupted = errors.New("interrupted")

// Runner drives a Navigator through an IOHandler: render, read one line, navigate.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Input    io.Reader
	Output   io.Writer
	Renderer ContentRenderer

	// HandleSignals turns SIGINT/SIGTERM into ErrInterrupted.
	HandleSignals bool

	ownText *TextHandler
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run navigates the tree rooted at root until the root level terminates.
//
// Lines rejected by SanitizeInput are reported through SystemOutput and
// the current screen is rendered again. Exhausted input ends the run without error. Errors returned by choice
// handlers are returned unchanged. Cancelling ctx ends the run with ctx.Err().
func (r *Runner) Run(ctx context.Context, nav ports.Navigator, root *domain.Menu) error {
	handler := r.resolveHandler()

	parent := ctx
	var signals *SignalManager
	if r.HandleSignals {
		signals = NewSignalManager(parent)
		defer signals.Stop()
		ctx = signals.Context()
	}

	state, err := nav.Start(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to start navigation: %w", err)
	}

	screen, done, err := nav.Render(ctx, state)
	if err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	for !done {
		if err := handler.Output(ctx, screen); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		input, err := handler.Input(ctx)
		if err != nil {
			if signals != nil {
				signals.CheckRace()
			}
			switch {
			case parent.Err() != nil:
				return parent.Err()
			case ctx.Err() != nil:
				r.Logger.Debug("runner interrupted", "err", ctx.Err())
				return ErrInterrupted
			case errors.Is(err, io.EOF):
				r.Logger.Debug("input closed, leaving menu", "depth", state.Depth())
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		input, err = SanitizeInput(input)
		if err != nil {
			r.Logger.Debug("input rejected", "err", err)
			if err := handler.SystemOutput(ctx, err.Error()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			// Back to the top of the loop so the current screen is shown again.
			continue
		}

		step, err := NavigateAndRender(ctx, nav, state, input)
		if err != nil {
			return err
		}
		state, screen, done = step.State, step.Screen, step.Terminal
	}

	r.Logger.Debug("menu terminated")
	return nil
}

// resolveHandler ensures a valid IOHandler is set. The default TextHandler
// is kept across Run calls so a single pump owns the reader; it is replaced
// only after a cancelled run closed it.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	if r.ownText == nil || r.ownText.closed() {
		r.ownText = NewTextHandler(r.Input, r.Output, WithTextHandlerRenderer(r.Renderer))
	}
	return r.ownText
}
