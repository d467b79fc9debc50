package menusys

import (
	"context"

	"github.com/aretw0/menusys/pkg/runner"
)

// Run drives the engine tree interactively until the root menu terminates
// or input is exhausted. Without options it reads stdin and writes stdout.
func (e *Engine) Run(ctx context.Context, opts ...runner.Option) error {
	opts = append([]runner.Option{runner.WithLogger(e.logger)}, opts...)
	return runner.NewRunner(opts...).Run(ctx, e.runtime, e.root)
}
