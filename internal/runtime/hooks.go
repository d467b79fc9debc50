package runtime

import (
	"context"

	"github.com/aretw0/menusys/pkg/domain"
)

func (e *Engine) emitMenuEnter(ctx context.Context, m *domain.Menu, depth int) {
	if e.hooks.OnMenuEnter == nil {
		return
	}
	e.hooks.OnMenuEnter(ctx, &domain.MenuEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventMenuEnter},
		Title:     m.Title,
		Depth:     depth,
	})
}

func (e *Engine) emitMenuLeave(ctx context.Context, m *domain.Menu, depth int) {
	if e.hooks.OnMenuLeave == nil {
		return
	}
	e.hooks.OnMenuLeave(ctx, &domain.MenuEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventMenuLeave},
		Title:     m.Title,
		Depth:     depth,
	})
}

func (e *Engine) emitSelect(ctx context.Context, m *domain.Menu, c *domain.Choice, signal domain.Signal) {
	if e.hooks.OnSelect == nil {
		return
	}
	handler := ""
	if c.Handler != nil {
		handler = c.Handler.Name
	}
	e.hooks.OnSelect(ctx, &domain.SelectEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventSelect},
		Title:     m.Title,
		Selector:  c.Selector,
		Handler:   handler,
		Signal:    signal,
	})
}

func (e *Engine) emitInvalidInput(ctx context.Context, m *domain.Menu, token string) {
	if e.hooks.OnInvalidInput == nil {
		return
	}
	e.hooks.OnInvalidInput(ctx, &domain.SelectEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventInvalidInput},
		Title:     m.Title,
		Selector:  token,
	})
}
