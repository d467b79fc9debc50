package domain

import "context"

// NoHandlerName is the literal token that stands for "no handler" in markup.
const NoHandlerName = "None"

// Signal tells the engine whether to stay on the current level after a handler runs.
type Signal int

const (
	// Continue keeps the current level active. It is the zero value.
	Continue Signal = iota
	// Terminate ends the current level and returns control to its parent.
	Terminate
)

func (s Signal) String() string {
	if s == Terminate {
		return "terminate"
	}
	return "continue"
}

// HandlerFunc is the business logic bound to a Choice.
// It receives the Choice value.
type HandlerFunc func(ctx context.Context, value string) (Signal, error)

// Handler pairs a HandlerFunc with the name it is declared under.
// The name is what the codecs persist.
type Handler struct {
	Name string
	Fn   HandlerFunc
}

// NewHandler creates a named Handler.
func NewHandler(name string, fn HandlerFunc) *Handler {
	return &Handler{Name: name, Fn: fn}
}

// Invoke calls the handler with value. A nil Fn is treated as Continue.
func (h *Handler) Invoke(ctx context.Context, value string) (Signal, error) {
	if h == nil || h.Fn == nil {
		return Continue, nil
	}
	return h.Fn(ctx, value)
}

// Resolver maps a handler name back to an invocable Handler.
// Resolving NoHandlerName yields (nil, nil).
// Unknown names, the empty name included, fail with *NameResolutionError.
type Resolver interface {
	Resolve(name string) (*Handler, error)
}
