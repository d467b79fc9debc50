package tui

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a screen renderer that highlights the menu title and
// sub-menu markers. When w is not a terminal, screens are returned untouched.
func NewRenderer(w io.Writer) func(string) (string, error) {
	if !IsTerminal(w) {
		return func(screen string) (string, error) { return screen, nil }
	}
	return newStyler(termenv.NewOutput(w))
}

func newStyler(out *termenv.Output) func(string) (string, error) {
	p := out.Profile
	return func(screen string) (string, error) {
		lines := strings.Split(screen, "\n")
		titleDone := false
		for i, line := range lines {
			switch {
			case !titleDone && strings.TrimSpace(line) != "":
				lines[i] = out.String(line).Bold().Foreground(p.Color("#a78bfa")).String()
				titleDone = true
			case strings.HasPrefix(line, "\t") && strings.HasSuffix(line, " **"):
				lines[i] = out.String(line).Foreground(p.Color("#f472b6")).String()
			}
		}
		return strings.Join(lines, "\n"), nil
	}
}
