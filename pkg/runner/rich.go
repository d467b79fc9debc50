package runner

import (
	"context"

	"github.com/aretw0/menusys/pkg/domain"
	"github.com/aretw0/menusys/pkg/ports"
)

// Step combines the next state with its rendered screen for clients that
// drive navigation one input at a time.
type Step struct {
	State    *domain.State `json:"-"`
	Screen   string        `json:"screen"`
	Depth    int           `json:"depth"`
	Terminal bool          `json:"terminal"`
}

// NavigateAndRender performs a navigation step and immediately renders the resulting state.
// Navigation errors, including handler errors, are returned unchanged.
func NavigateAndRender(ctx context.Context, nav ports.Navigator, current *domain.State, input string) (*Step, error) {
	next, err := nav.Navigate(ctx, current, input)
	if err != nil {
		return nil, err
	}

	screen, terminal, err := nav.Render(ctx, next)
	if err != nil {
		// Even if render fails, the new state is returned so the caller can recover.
		return &Step{State: next, Depth: next.Depth(), Terminal: terminal}, err
	}

	return &Step{
		State:    next,
		Screen:   screen,
		Depth:    next.Depth(),
		Terminal: terminal,
	}, nil
}
