package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type styles struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
	key     lipgloss.Style
	unicode bool
}

// newStyles returns colored styles when w is a terminal and plain ones otherwise.
func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return styles{title: plain, ok: plain, failed: plain, muted: plain, key: plain}
	}

	renderer := lipgloss.NewRenderer(w)
	return styles{
		title:   renderer.NewStyle().Bold(true),
		ok:      renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}),
		failed:  renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}).Bold(true),
		muted:   renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}),
		key:     renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"}),
		unicode: true,
	}
}

func (s styles) okMark() string {
	if s.unicode {
		return s.ok.Render("✔")
	}
	return "ok"
}

func (s styles) failMark() string {
	if s.unicode {
		return s.failed.Render("✖")
	}
	return "FAIL"
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
