package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary   = lipgloss.Color("#BD93F9")
	ColorSecondary = lipgloss.Color("#6272A4")
	ColorSuccess   = lipgloss.Color("#50FA7B")
	ColorDanger    = lipgloss.Color("#FF5555")

	// Chip colors
	ColorChip   = lipgloss.Color("#BD93F9")
	ColorChipBg = lipgloss.Color("#2E2A44")
)

// ══════════════════════════════════════════════════════════════════════════════
// CHIPS - Selected options on a closed multi-select
// ══════════════════════════════════════════════════════════════════════════════

// MaxChipWidth caps a chip label so three chips fit on one line
const MaxChipWidth = 28

// RenderChip returns a styled chip with its remove affordance
func RenderChip(label string, focused bool, t Theme) string {
	label = runewidth.Truncate(label, MaxChipWidth, "…")
	style := t.Renderer.NewStyle().
		Foreground(ColorChip).
		Background(ColorChipBg).
		Padding(0, 1)
	if focused {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(label + " ×")
}

// RenderSummaryChip returns the single chip used for larger selections
func RenderSummaryChip(text string, t Theme) string {
	return t.Renderer.NewStyle().
		Foreground(ColorChip).
		Background(ColorChipBg).
		Padding(0, 1).
		Render(text)
}

// RenderCheckbox renders a [x] / [ ] marker
func RenderCheckbox(checked bool, t Theme) string {
	if checked {
		return t.Renderer.NewStyle().Foreground(t.Primary).Render("[✓]")
	}
	return t.Renderer.NewStyle().Foreground(t.Subtext).Render("[ ]")
}

// RenderButton renders a one-line button, inverted when focused
func RenderButton(label string, focused bool, t Theme) string {
	style := t.Renderer.NewStyle().
		Padding(0, 3).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	if focused {
		style = style.Foreground(t.Primary).BorderForeground(t.Primary)
	}
	return style.Render(label)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
