package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Connector cells as drawn by the tree renderer. Every cell is four runes.
var cells = []string{"├── ", "└── ", "│   ", "    "}

// newConnectorStyle returns the style used to draw connectors on w for the
// given color mode, one of "auto", "always", or "never".
func newConnectorStyle(w io.Writer, mode string) (lipgloss.Style, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "auto":
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	default:
		return lipgloss.Style{}, fmt.Errorf("invalid color mode %q (want auto, always, or never)", mode)
	}
	return r.NewStyle().Foreground(lipgloss.Color("244")), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorize applies st to the connector prefix of each line of tree.
func colorize(tree string, st lipgloss.Style) string {
	lines := strings.Split(tree, "\n")
	for i, line := range lines {
		n := prefixLen(line)
		if n == 0 {
			continue
		}
		lines[i] = st.Render(line[:n]) + line[n:]
	}
	return strings.Join(lines, "\n")
}

// prefixLen reports the length in bytes of the run of connector cells at the
// start of line.
func prefixLen(line string) int {
	n := 0
next:
	for {
		for _, c := range cells {
			if strings.HasPrefix(line[n:], c) {
				n += len(c)
				continue next
			}
		}
		return n
	}
}
