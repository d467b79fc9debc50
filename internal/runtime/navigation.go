package runtime

import (
	"context"
	"strings"

	"github.com/aretw0/menusys/pkg/domain"
)

// Navigate feeds one raw input line to the active level and returns the next State.
//
// An input that selects nothing leaves the State unchanged so the caller reprompts.
// A selected handler always runs before its sub-menu is entered. A Terminate
// signal pops the active level; popping the root marks the State terminated.
// Handler errors are returned as-is and the State is left untouched.
func (e *Engine) Navigate(ctx context.Context, state *domain.State, input string) (*domain.State, error) {
	if state == nil || state.Terminated || state.Depth() == 0 {
		return state, ErrTerminated
	}

	current := state.Current()
	token := strings.TrimSpace(input)

	choice := current.Lookup(token)
	if choice == nil {
		e.logger.Debug("no choice matches input", "title", current.Title, "input", token)
		e.emitInvalidInput(ctx, current, token)
		return state, nil
	}

	signal := domain.Continue
	if choice.Handler != nil {
		var err error
		signal, err = choice.Handler.Invoke(ctx, choice.Value)
		if err != nil {
			return state, err
		}
	}
	e.emitSelect(ctx, current, choice, signal)

	next := state.Clone()

	if signal == domain.Terminate {
		next.Stack = next.Stack[:len(next.Stack)-1]
		e.emitMenuLeave(ctx, current, state.Depth())
		if len(next.Stack) == 0 {
			next.Terminated = true
			e.logger.Debug("navigation terminated", "title", current.Title)
		}
		return next, nil
	}

	if choice.SubMenu != nil {
		next.Stack = append(next.Stack, choice.SubMenu)
		e.emitMenuEnter(ctx, choice.SubMenu, next.Depth())
		e.logger.Debug("entered sub-menu", "title", choice.SubMenu.Title, "depth", next.Depth())
	}

	return next, nil
}
