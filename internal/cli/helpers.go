package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/menusys/internal/logging"
	"github.com/aretw0/menusys/pkg/runner"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout menu UI).
func createLogger(debug bool, format string) *slog.Logger {
	if !debug {
		return logging.NewNop()
	}
	return logging.NewWithOptions(logging.Options{
		Level:  slog.LevelDebug,
		Format: format,
		Writer: os.Stderr,
	})
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, runner.ErrInterrupted) || errors.Is(err, context.Canceled)
}

// handleExecutionError maps interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

func logCompletion(w io.Writer, err error, quiet bool) {
	if quiet {
		return
	}
	switch {
	case err == nil:
		printSystemMessage(w, "Finished.")
	case isInterrupted(err):
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted.")
	}
}
