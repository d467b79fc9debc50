package runner

import (
	"context"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents a rendered menu screen.
	Output(ctx context.Context, screen string) error

	// Input reads one response line from the user.
	// io.EOF means the input source is exhausted.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. status updates).
	// This is distinct from menu rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms a screen before outputting it.
// This allows terminal styling without coupling the core package.
type ContentRenderer func(string) (string, error)
