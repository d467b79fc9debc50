package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventMenuEnter    EventType = "menu_enter"
	EventMenuLeave    EventType = "menu_leave"
	EventSelect       EventType = "select"
	EventInvalidInput EventType = "invalid_input"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// MenuEvent represents entry into or exit from a menu level.
type MenuEvent struct {
	EventBase
	Title string `json:"title"`
	Depth int    `json:"depth"`
}

// SelectEvent represents a resolved (or unresolved) selection.
type SelectEvent struct {
	EventBase
	Title    string `json:"title"`
	Selector string `json:"selector"`
	Handler  string `json:"handler,omitempty"`
	Signal   Signal `json:"signal"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnMenuEnter    func(context.Context, *MenuEvent)
	OnMenuLeave    func(context.Context, *MenuEvent)
	OnSelect       func(context.Context, *SelectEvent)
	OnInvalidInput func(context.Context, *SelectEvent)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnMenuEnter:    chain(h.OnMenuEnter, other.OnMenuEnter),
		OnMenuLeave:    chain(h.OnMenuLeave, other.OnMenuLeave),
		OnSelect:       chain(h.OnSelect, other.OnSelect),
		OnInvalidInput: chain(h.OnInvalidInput, other.OnInvalidInput),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
