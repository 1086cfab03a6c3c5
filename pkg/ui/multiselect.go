package ui

import (
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/selection"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

// MultiSelectModel is the view half of the selection widget. It keeps only
// transient UI state; the selection itself arrives in a selection.Control on
// every call and changes leave through the control's OnChange.
type MultiSelectModel struct {
	label       string
	placeholder string

	// UI State
	open        bool
	cursor      int // index into the visible (filtered) options
	chipCursor  int // index into the chips shown while closed
	filtering   bool
	filterInput textinput.Model

	width int
	theme Theme
}

// NewMultiSelectModel creates a closed multi-select
func NewMultiSelectModel(label, placeholder string, theme Theme) MultiSelectModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 64
	ti.Width = 30

	if placeholder == "" {
		placeholder = selection.DefaultPlaceholder
	}

	return MultiSelectModel{
		label:       label,
		placeholder: placeholder,
		filterInput: ti,
		theme:       theme,
		width:       60,
	}
}

// SetWidth updates the widget width
func (m *MultiSelectModel) SetWidth(width int) {
	m.width = width
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.filterInput.Width = inputWidth
}

// IsOpen returns true while the option list is showing
func (m *MultiSelectModel) IsOpen() bool {
	return m.open
}

// IsFiltering returns true while keystrokes go to the filter query
func (m *MultiSelectModel) IsFiltering() bool {
	return m.filtering
}

// Close hides the option list and drops the filter
func (m *MultiSelectModel) Close() {
	m.open = false
	m.filtering = false
	m.filterInput.SetValue("")
	m.cursor = 0
}

// FilterValue returns the current filter query
func (m *MultiSelectModel) FilterValue() string {
	return m.filterInput.Value()
}

// HandleKey processes a key against the given control and reports whether
// the widget consumed it. Unconsumed keys (tab, up/down while closed) belong
// to the parent form.
func (m *MultiSelectModel) HandleKey(key string, ctl selection.Control) (handled bool) {
	if ctl.Disabled {
		if m.open {
			m.Close()
		}
		return false
	}
	m.clampChipCursor(ctl)

	if !m.open {
		return m.handleClosedKey(key, ctl)
	}
	if m.filtering {
		m.handleFilterKey(key, ctl)
		return true
	}
	return m.handleOpenKey(key, ctl)
}

func (m *MultiSelectModel) handleClosedKey(key string, ctl selection.Control) bool {
	chips := selection.Summarize(ctl.Selected, m.placeholder).Chips

	switch {
	case key == "enter" || isSpaceKey(key):
		m.open = true
		m.cursor = 0
		return true
	case key == "left" || key == "h":
		if m.chipCursor > 0 {
			m.chipCursor--
		}
		return true
	case key == "right" || key == "l":
		if m.chipCursor < len(chips)-1 {
			m.chipCursor++
		}
		return true
	case isRemoveKey(key):
		// Removing a chip never opens the option list.
		if m.chipCursor < len(chips) {
			ctl.RemoveOne(chips[m.chipCursor])
			if m.chipCursor > 0 && m.chipCursor >= len(chips)-1 {
				m.chipCursor--
			}
		}
		return true
	}
	return false
}

func (m *MultiSelectModel) handleOpenKey(key string, ctl selection.Control) bool {
	visible := m.visibleOptions(ctl)

	switch {
	case key == "up" || key == "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case key == "down" || key == "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case isSpaceKey(key) || key == "x":
		if m.cursor < len(visible) {
			ctl.Toggle(visible[m.cursor])
		}
	case key == "a":
		ctl.SelectAll()
	case key == "c":
		ctl.ClearAll()
	case key == "/":
		m.filtering = true
	case key == "esc" || key == "enter":
		m.Close()
	case key == "tab" || key == "shift+tab":
		// Leaving the field closes the list; the parent still moves focus.
		m.Close()
		return false
	}
	return true
}

func (m *MultiSelectModel) handleFilterKey(key string, ctl selection.Control) {
	switch key {
	case "esc":
		m.filtering = false
		m.filterInput.SetValue("")
	case "enter":
		m.filtering = false
	case "backspace":
		if v := m.filterInput.Value(); len(v) > 0 {
			m.filterInput.SetValue(v[:len(v)-1])
		}
	default:
		if IsPrintableKey(key) {
			m.filterInput.SetValue(m.filterInput.Value() + key)
		}
	}
	m.cursor = 0
}

// visibleOptions applies the fuzzy filter to the candidate list
func (m *MultiSelectModel) visibleOptions(ctl selection.Control) []string {
	query := strings.TrimSpace(m.filterInput.Value())
	if query == "" {
		return ctl.Options
	}

	matches := fuzzy.Find(query, ctl.Options)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, ctl.Options[match.Index])
	}
	return out
}

func (m *MultiSelectModel) clampChipCursor(ctl selection.Control) {
	n := len(selection.Summarize(ctl.Selected, m.placeholder).Chips)
	if m.chipCursor >= n {
		m.chipCursor = n - 1
	}
	if m.chipCursor < 0 {
		m.chipCursor = 0
	}
}

// View renders the trigger line and, when open, the option list
func (m *MultiSelectModel) View(ctl selection.Control, focused bool) string {
	t := m.theme
	m.clampChipCursor(ctl)

	var lines []string
	lines = append(lines, m.renderTrigger(ctl, focused))

	if m.open && !ctl.Disabled {
		lines = append(lines, m.renderOptions(ctl)...)
	}

	boxStyle := t.Renderer.NewStyle().
		Padding(0, 1).
		Width(m.width)
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (m *MultiSelectModel) renderTrigger(ctl selection.Control, focused bool) string {
	t := m.theme
	display := selection.Summarize(ctl.Selected, m.placeholder)

	var body string
	switch display.Mode {
	case selection.DisplayPlaceholder:
		body = t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).Render(display.Text)
	case selection.DisplayChips:
		chips := make([]string, len(display.Chips))
		for i, chip := range display.Chips {
			chips[i] = RenderChip(chip, focused && !m.open && i == m.chipCursor, t)
		}
		body = strings.Join(chips, " ")
	case selection.DisplaySummary:
		body = RenderSummaryChip(display.Text, t)
	}

	arrow := "▾"
	if m.open {
		arrow = "▴"
	}

	prefix := "  "
	if focused {
		prefix = "▸ "
	}

	style := t.Renderer.NewStyle().Foreground(t.Base.GetForeground())
	if ctl.Disabled {
		style = style.Faint(true)
	}
	return style.Render(prefix) + body + " " + style.Render(arrow)
}

func (m *MultiSelectModel) renderOptions(ctl selection.Control) []string {
	t := m.theme
	var lines []string

	hintStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
	lines = append(lines, hintStyle.Render("    [a] Select All  [c] Clear All  [/] Filter"))

	if m.filtering || m.filterInput.Value() != "" {
		inputStyle := t.Renderer.NewStyle().Foreground(t.Primary)
		query := m.filterInput.Value()
		if query == "" {
			query = t.Renderer.NewStyle().Foreground(t.Subtext).Render(m.filterInput.Placeholder)
		}
		cursor := ""
		if m.filtering {
			cursor = "▌"
		}
		lines = append(lines, "    "+inputStyle.Render("/ ")+query+cursor)
	}

	visible := m.visibleOptions(ctl)
	if len(visible) == 0 {
		emptyStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		return append(lines, emptyStyle.Render("    No matching options"))
	}

	// Scroll so the cursor stays in view
	start := 0
	if m.cursor >= MaxVisibleOptions {
		start = m.cursor - MaxVisibleOptions + 1
	}
	end := start + MaxVisibleOptions
	if end > len(visible) {
		end = len(visible)
	}

	maxLabel := m.width - 12
	if maxLabel < 10 {
		maxLabel = 10
	}

	for i := start; i < end; i++ {
		option := visible[i]
		prefix := "    "
		nameStyle := t.Renderer.NewStyle().Foreground(t.Base.GetForeground())
		if i == m.cursor {
			prefix = "  ▸ "
			nameStyle = nameStyle.Foreground(t.Primary).Bold(true)
		}
		label := runewidth.Truncate(option, maxLabel, "…")
		lines = append(lines, prefix+RenderCheckbox(ctl.Selected.Contains(option), t)+" "+nameStyle.Render(label))
	}

	if len(visible) > end {
		moreStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true)
		lines = append(lines, moreStyle.Render("    ... and "+strconv.Itoa(len(visible)-end)+" more"))
	}
	return lines
}
