package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned by ApplyTheme for names not in Themes
var ErrUnknownTheme = errors.New("unknown theme")

// Palette is the set of colors a theme assigns
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Accent    lipgloss.Color // cursor cell
	OnAccent  lipgloss.Color
	Weekend   lipgloss.Color
	Today     lipgloss.Color
}

const DefaultTheme = "default"

var Themes = map[string]Palette{
	DefaultTheme: {
		Primary:   "#7C3AED",
		Secondary: "#A78BFA",
		Success:   "#10B981",
		Warning:   "#F59E0B",
		Danger:    "#EF4444",
		Muted:     "#6B7280",
		Text:      "#F9FAFB",
		Accent:    "#40E0D0", // turquoise
		OnAccent:  "#111827",
		Weekend:   "#F472B6",
		Today:     "#8A2BE2", // blueviolet
	},
	"light": {
		Primary:   "#6D28D9",
		Secondary: "#7C3AED",
		Success:   "#047857",
		Warning:   "#B45309",
		Danger:    "#B91C1C",
		Muted:     "#6B7280",
		Text:      "#111827",
		Accent:    "#0D9488",
		OnAccent:  "#FFFFFF",
		Weekend:   "#DB2777",
		Today:     "#C4B5FD",
	},
}

// Active palette, read by every component at render time
var (
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Accent    lipgloss.Color
	OnAccent  lipgloss.Color
	Weekend   lipgloss.Color
	Today     lipgloss.Color
)

func init() {
	setPalette(Themes[DefaultTheme])
}

func setPalette(p Palette) {
	Primary = p.Primary
	Secondary = p.Secondary
	Success = p.Success
	Warning = p.Warning
	Danger = p.Danger
	Muted = p.Muted
	Text = p.Text
	Accent = p.Accent
	OnAccent = p.OnAccent
	Weekend = p.Weekend
	Today = p.Today
}

// ApplyTheme switches the active palette. An empty name selects the default.
// Unknown names leave the palette unchanged.
func ApplyTheme(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultTheme
	}
	p, ok := Themes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	setPalette(p)
	return nil
}

// Button renders a bordered button, filled when focused
func Button(label string, focused bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if focused {
		return style.Bold(true).
			BorderForeground(Primary).
			Background(Primary).
			Foreground(Text).
			Render(label)
	}
	return style.BorderForeground(Muted).Foreground(Muted).Render(label)
}
