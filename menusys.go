package menusys

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/menusys/internal/runtime"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/ports"
)

// Engine is the high-level entry point for the menusys library.
// It owns one menu tree and wraps the internal runtime with a simplified API.
type Engine struct {
	runtime   *runtime.Engine
	root      *domain.Menu
	location  string
	resolver  domain.Resolver
	codecOpts []codec.Option
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithResolver sets the resolver used to bind handler names while loading.
func WithResolver(resolver domain.Resolver) Option {
	return func(e *Engine) {
		e.resolver = resolver
	}
}

// WithMenu injects an in-memory tree, bypassing loading.
func WithMenu(root *domain.Menu) Option {
	return func(e *Engine) {
		e.root = root
	}
}

// WithCodecOptions passes options to the codec used for Load, Reload and Save.
func WithCodecOptions(opts ...codec.Option) Option {
	return func(e *Engine) {
		e.codecOpts = append(e.codecOpts, opts...)
	}
}

// New initializes a new Engine.
// The tree is loaded from location unless WithMenu provides one, in which case
// location may be empty.
func New(location string, opts ...Option) (*Engine, error) {
	eng := &Engine{location: location}

	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if location != "" {
		eng.logger = eng.logger.With("location", location)
	}

	if eng.root == nil {
		if location == "" {
			return nil, fmt.Errorf("location is required when no menu is provided")
		}
		root, err := eng.codec(location).Load(context.Background())
		if err != nil {
			return nil, err
		}
		eng.root = root
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)

	return eng, nil
}

func (e *Engine) codec(location string) *codec.Codec {
	opts := append([]codec.Option{codec.WithLogger(e.logger)}, e.codecOpts...)
	return codec.New(location, e.resolver, opts...)
}

// Menu returns the root of the tree.
func (e *Engine) Menu() *domain.Menu {
	return e.root
}

// Navigator exposes the stateless core for runners and adapters.
func (e *Engine) Navigator() ports.Navigator {
	return e.runtime
}

// Start creates the initial state with the root menu active and triggers lifecycle hooks.
func (e *Engine) Start(ctx context.Context) (*domain.State, error) {
	return e.runtime.Start(ctx, e.root)
}

// Render returns the screen of the active menu.
// Returns the screen, isTerminal (true once the root menu has returned), and error.
func (e *Engine) Render(ctx context.Context, state *domain.State) (string, bool, error) {
	return e.runtime.Render(ctx, state)
}

// Navigate feeds one input line to the active menu and returns the next state.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error) {
	return e.runtime.Navigate(ctx, state, input)
}

// Reload reads the tree again from the engine location.
// States created before the reload keep pointing at the previous tree.
func (e *Engine) Reload(ctx context.Context) error {
	if e.location == "" {
		return fmt.Errorf("engine has no location to reload from")
	}
	root, err := e.codec(e.location).Load(ctx)
	if err != nil {
		return err
	}
	e.root = root
	e.logger.Debug("menu reloaded", "title", root.Title)
	return nil
}

// Save writes the tree to location using the engine codec options.
func (e *Engine) Save(ctx context.Context, location string) error {
	return e.codec(location).Save(ctx, e.root)
}
