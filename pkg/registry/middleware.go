package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/menusys/pkg/domain"
)

// Middleware decorates the handler registered under name.
// It can observe, modify or short-circuit the call.
type Middleware func(name string, next domain.HandlerFunc) domain.HandlerFunc

// Use appends middleware. Handlers resolved afterwards are wrapped so that
// the first middleware given is the outermost one.
func (r *Registry) Use(mw ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middleware = append(r.middleware, mw...)
}

func (r *Registry) wrap(name string, fn domain.HandlerFunc) domain.HandlerFunc {
	r.mu.RLock()
	chain := append([]Middleware(nil), r.middleware...)
	r.mu.RUnlock()

	if fn == nil {
		return nil
	}
	for i := len(chain) - 1; i >= 0; i-- {
		fn = chain[i](name, fn)
	}
	return fn
}

// LoggingMiddleware logs every invocation with its outcome and duration.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(name string, next domain.HandlerFunc) domain.HandlerFunc {
		return func(ctx context.Context, value string) (domain.Signal, error) {
			start := time.Now()
			sig, err := next(ctx, value)
			if err != nil {
				logger.Error("handler failed", "handler", name, "duration", time.Since(start), "err", err)
				return sig, err
			}
			logger.Debug("handler executed", "handler", name, "signal", sig.String(), "duration", time.Since(start))
			return sig, nil
		}
	}
}

// RecoverMiddleware turns a panicking handler into an error.
func RecoverMiddleware() Middleware {
	return func(name string, next domain.HandlerFunc) domain.HandlerFunc {
		return func(ctx context.Context, value string) (sig domain.Signal, err error) {
			defer func() {
				if p := recover(); p != nil {
					sig, err = domain.Continue, fmt.Errorf("handler %q panicked: %v", name, p)
				}
			}()
			return next(ctx, value)
		}
	}
}
