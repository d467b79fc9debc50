package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/registry"
)

// RegisterBuiltins binds the demo handlers referenced by the bundled menus.
// Handlers print to w.
func RegisterBuiltins(reg *registry.Registry, w io.Writer) {
	reg.Register("print_ok", func(ctx context.Context, value string) (domain.Signal, error) {
		_, err := fmt.Fprintf(w, "OK: %s\n", value)
		return domain.Continue, err
	})
	reg.Register("print_bad", func(ctx context.Context, value string) (domain.Signal, error) {
		_, err := fmt.Fprintf(w, "BAD: %s\n", value)
		return domain.Continue, err
	})
	reg.Register("done", func(ctx context.Context, value string) (domain.Signal, error) {
		return domain.Terminate, nil
	})
	reg.Register("submenu_handler", func(ctx context.Context, value string) (domain.Signal, error) {
		_, err := fmt.Fprintln(w, "Going to submenu")
		return domain.Continue, err
	})
}
