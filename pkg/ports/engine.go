package ports

import (
	"context"

	"github.com/aretw0/menusys/pkg/domain"
)

// Navigator is the stateless navigation core.
// Callers keep the State and feed it back on every call.
type Navigator interface {
	// Start creates the State for a tree rooted at root.
	Start(ctx context.Context, root *domain.Menu) (*domain.State, error)

	// Render returns the screen for the active level and whether navigation is over.
	Render(ctx context.Context, state *domain.State) (string, bool, error)

	// Navigate feeds one input line to the active level.
	Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error)
}
