package utils

import (
	"github.com/charmbracelet/lipgloss"
)

// Truncate shortens s to at most maxWidth terminal cells, ending in "…".
func Truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		if cut := string(runes[:n]) + "…"; lipgloss.Width(cut) <= maxWidth {
			return cut
		}
	}
	return "…"
}
