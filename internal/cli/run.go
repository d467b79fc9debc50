package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/menusys"
	"github.com/aretw0/menusys/internal/presentation/tui"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/observability"
	"github.com/aretw0/menusys/pkg/ports"
	"github.com/aretw0/menusys/pkg/registry"
	"github.com/aretw0/menusys/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Location    string
	Format      codec.Format
	Strict      bool
	JSON        bool
	Debug       bool
	LogFormat   string
	Quiet       bool
	MetricsAddr string

	// Store backs store:// locations.
	Store ports.DocumentStore

	In  io.Reader
	Out io.Writer
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
}

// Execute loads the menu at opts.Location and drives it interactively.
// Interruptions end the session without error.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	logger := createLogger(opts.Debug, opts.LogFormat)

	reg := registry.NewRegistry()
	reg.Use(registry.RecoverMiddleware(), registry.LoggingMiddleware(logger))
	RegisterBuiltins(reg, opts.Out)

	engineOpts := []menusys.Option{
		menusys.WithLogger(logger),
		menusys.WithResolver(reg),
		menusys.WithCodecOptions(codecOptions(opts.Format, opts.Strict, opts.Store)...),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, menusys.WithLifecycleHooks(observability.LoggingHooks(logger)))
	}

	if opts.MetricsAddr != "" {
		promReg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(promReg)
		if err != nil {
			return err
		}
		reg.Use(metrics.Middleware())
		engineOpts = append(engineOpts, menusys.WithLifecycleHooks(metrics.Hooks()))

		stop := serveMetrics(opts.MetricsAddr, promReg, logger)
		defer stop()
	}

	engine, err := menusys.New(opts.Location, engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing engine: %w", err)
	}

	if !opts.JSON && !opts.Quiet {
		tui.PrintBanner(opts.Out)
	}

	err = engine.Run(ctx, runnerOptions(opts, logger)...)
	logCompletion(opts.Out, err, opts.Quiet || opts.JSON)
	return handleExecutionError(err)
}

func runnerOptions(opts RunOptions, logger *slog.Logger) []runner.Option {
	rOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithIO(opts.In, opts.Out),
		runner.WithSignals(true),
	}
	if opts.JSON {
		rOpts = append(rOpts, runner.WithInputHandler(runner.NewJSONHandler(opts.In, opts.Out)))
	} else {
		rOpts = append(rOpts, runner.WithRenderer(tui.NewRenderer(opts.Out)))
	}
	return rOpts
}

func codecOptions(format codec.Format, strict bool, store ports.DocumentStore) []codec.Option {
	opts := []codec.Option{
		codec.WithFormat(format),
		codec.WithStrict(strict),
	}
	if store != nil {
		opts = append(opts, codec.WithStore(store))
	}
	return opts
}

// serveMetrics exposes g on addr in the background until the returned func is called.
func serveMetrics(addr string, g prometheus.Gatherer, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler(g))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
