package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the menusys ASCII banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.Profile
	lines := []struct {
		text  string
		color string
	}{
		{" _ __ ___   ___ _ __  _   _ ___ _   _ ___ ", "#818cf8"},
		{"| '_ ` _ \\ / _ \\ '_ \\| | | / __| | | / __|", "#a78bfa"},
		{"| | | | | |  __/ | | | |_| \\__ \\ |_| \\__ \\", "#c084fc"},
		{"|_| |_| |_|\\___|_| |_|\\__,_|___/\\__, |___/", "#e879f9"},
		{"                                |___/     ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
