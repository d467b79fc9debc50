package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/menusys/pkg/domain"
)

// Registry is a handler namespace: it binds names to handler functions.
// It implements domain.Resolver for the codecs.
type Registry struct {
	mu         sync.RWMutex
	handlers   map[string]domain.HandlerFunc
	middleware []Middleware
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]domain.HandlerFunc),
	}
}

// Register adds a handler to the registry.
// If a handler with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn domain.HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = fn
}

// Handler registers fn and returns it as a named domain.Handler,
// ready to be attached to a Choice.
func (r *Registry) Handler(name string, fn domain.HandlerFunc) *domain.Handler {
	r.Register(name, fn)
	return domain.NewHandler(name, r.wrap(name, fn))
}

// Resolve looks up a handler by name.
// Only the "None" token resolves to no handler; an empty name is unknown.
func (r *Registry) Resolve(name string) (*domain.Handler, error) {
	if name == domain.NoHandlerName {
		return nil, nil
	}

	r.mu.RLock()
	fn, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.NameResolutionError{Name: name}
	}
	return domain.NewHandler(name, r.wrap(name, fn)), nil
}

// Execute looks up a handler by name and invokes it with value.
func (r *Registry) Execute(ctx context.Context, name string, value string) (domain.Signal, error) {
	h, err := r.Resolve(name)
	if err != nil {
		return domain.Continue, err
	}
	return h.Invoke(ctx, value)
}

// Names lists registered handler names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map adapts a plain map of functions into a domain.Resolver.
type Map map[string]domain.HandlerFunc

// Resolve implements domain.Resolver.
func (m Map) Resolve(name string) (*domain.Handler, error) {
	if name == domain.NoHandlerName {
		return nil, nil
	}
	fn, ok := m[name]
	if !ok {
		return nil, &domain.NameResolutionError{Name: name}
	}
	return domain.NewHandler(name, fn), nil
}

// Placeholder resolves every name to a handler without a function.
// It lets tools load, validate and convert documents without the business handlers.
type Placeholder struct{}

// Resolve implements domain.Resolver.
func (Placeholder) Resolve(name string) (*domain.Handler, error) {
	switch name {
	case domain.NoHandlerName:
		return nil, nil
	case "":
		return nil, &domain.NameResolutionError{Name: name}
	}
	return domain.NewHandler(name, nil), nil
}
