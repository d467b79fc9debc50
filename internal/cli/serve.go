package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	httpAdapter "github.com/aretw0/menusys/pkg/adapters/http"
	"github.com/aretw0/menusys/pkg/ports"
	"github.com/aretw0/menusys/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// shutdownTimeout bounds the graceful shutdown of the server.
const shutdownTimeout = 5 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	Addr      string
	Store     ports.DocumentStore
	Strict    bool
	Metrics   bool
	Builtins  bool
	Debug     bool
	LogFormat string

	Out io.Writer
}

// NewServer builds the HTTP server for opts without starting it.
func NewServer(opts ServeOptions) (*http.Server, error) {
	logger := createLogger(opts.Debug, opts.LogFormat)

	handlerOpts := []httpAdapter.Option{
		httpAdapter.WithLogger(logger),
		httpAdapter.WithStrict(opts.Strict),
	}
	if opts.Builtins {
		reg := registry.NewRegistry()
		RegisterBuiltins(reg, io.Discard)
		handlerOpts = append(handlerOpts, httpAdapter.WithResolver(reg))
	}
	if opts.Metrics {
		promReg := prometheus.NewRegistry()
		if err := promReg.Register(collectors.NewGoCollector()); err != nil {
			return nil, err
		}
		if err := promReg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, err
		}
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(promReg))
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           httpAdapter.NewHandler(opts.Store, handlerOpts...),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Serve runs the document server until ctx is done, then shuts it down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Store == nil {
		return errors.New("serve requires a document store")
	}

	srv, err := NewServer(opts)
	if err != nil {
		return err
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(opts.Out, "Starting menusys server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		fmt.Fprintln(opts.Out, "\nStart shutdown...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		fmt.Fprintln(opts.Out, "menusys server stopped gracefully")
		return nil
	}
}
