package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the renderer and semantic colors shared by every view
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor

	Base lipgloss.Style
}

// DefaultTheme builds the Dracula-flavoured theme for a renderer
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: string(ColorPrimary)},
		Secondary: lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: string(ColorSecondary)},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: string(ColorSubtext)},
		Border:    lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: string(ColorBgHighlight)},
		Highlight: lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: string(ColorBgSubtle)},
		Danger:    lipgloss.AdaptiveColor{Light: "#D70000", Dark: string(ColorDanger)},
		Success:   lipgloss.AdaptiveColor{Light: "#008700", Dark: string(ColorSuccess)},
		Base:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: string(ColorText)}),
	}
}
