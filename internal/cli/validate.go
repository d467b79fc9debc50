package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/menusys/internal/validator"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/ports"
	"github.com/aretw0/menusys/pkg/registry"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Location string
	Format   codec.Format
	Strict   bool
	Watch    bool
	Debug    bool
	Store    ports.DocumentStore

	// Builtins resolves handler names against the demo handlers instead of
	// accepting any name.
	Builtins bool

	Out io.Writer
}

// Validate loads the menu and checks its structure.
// In watch mode it re-validates on every change until ctx is done.
func Validate(ctx context.Context, opts ValidateOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if !opts.Watch {
		return validateOnce(ctx, opts)
	}
	if opts.Location == "-" || strings.Contains(opts.Location, "://") {
		return fmt.Errorf("--watch requires a file path, got %q", opts.Location)
	}

	logger := createLogger(opts.Debug, "")
	report := func() {
		if err := validateOnce(ctx, opts); err != nil {
			fmt.Fprintf(opts.Out, "Validation failed: %v\n", err)
		}
	}

	report()
	printSystemMessage(opts.Out, "Watching '%s' for changes...", opts.Location)
	err := WatchFile(ctx, opts.Location, logger, func(event string) {
		printSystemMessage(opts.Out, "Change detected in '%s'.", event)
		report()
	})
	return handleExecutionError(err)
}

func validateOnce(ctx context.Context, opts ValidateOptions) error {
	var resolver domain.Resolver = registry.Placeholder{}
	if opts.Builtins {
		reg := registry.NewRegistry()
		RegisterBuiltins(reg, io.Discard)
		resolver = reg
	}

	root, err := codec.New(opts.Location, resolver, codecOptions(opts.Format, opts.Strict, opts.Store)...).Load(ctx)
	if err != nil {
		return err
	}
	if err := validator.ValidateMenu(root); err != nil {
		return err
	}
	fmt.Fprintln(opts.Out, "Menu is valid! ✅")
	return nil
}
