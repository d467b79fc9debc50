package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/menusys/pkg/domain"
)

// LoggingHooks writes every navigation event to logger.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuEnter: func(ctx context.Context, e *domain.MenuEvent) {
			logger.Info("menu_enter", "title", e.Title, "depth", e.Depth)
		},
		OnMenuLeave: func(ctx context.Context, e *domain.MenuEvent) {
			logger.Info("menu_leave", "title", e.Title, "depth", e.Depth)
		},
		OnSelect: func(ctx context.Context, e *domain.SelectEvent) {
			logger.Info("select",
				"title", e.Title,
				"selector", e.Selector,
				"handler", e.Handler,
				"signal", e.Signal.String(),
			)
		},
		OnInvalidInput: func(ctx context.Context, e *domain.SelectEvent) {
			logger.Debug("invalid_input", "title", e.Title, "input", e.Selector)
		},
	}
}
