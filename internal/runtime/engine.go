package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/menusys/pkg/domain"
)

// ErrTerminated is returned when navigating a State whose root level has already returned.
var ErrTerminated = errors.New("navigation has terminated")

// Engine is the menu navigation state machine.
// It is stateless: every call receives the State to act on and returns the next one.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start creates the initial State with root as the only active level.
func (e *Engine) Start(ctx context.Context, root *domain.Menu) (*domain.State, error) {
	if root == nil {
		return nil, domain.ErrNoRootMenu
	}
	state := domain.NewState(root)
	e.emitMenuEnter(ctx, root, state.Depth())
	e.logger.Debug("navigation started", "title", root.Title)
	return state, nil
}

// Render returns the screen for the active level.
// The boolean is true once the State has terminated and nothing is left to show.
func (e *Engine) Render(ctx context.Context, state *domain.State) (string, bool, error) {
	if state == nil {
		return "", true, ErrTerminated
	}
	if state.Terminated || state.Depth() == 0 {
		return "", true, nil
	}
	return state.Current().Render(), false, nil
}
