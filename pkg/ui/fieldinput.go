package ui

import (
	"github.com/Dicklesworthstone/scorecard_builder/pkg/form"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FieldInput is a labelled single-line text field with an optional validator
type FieldInput struct {
	input    textinput.Model
	label    string
	required bool
	validate form.StringValidator
	err      string
	width    int
	theme    Theme
}

// NewFieldInput creates a blurred text field
func NewFieldInput(label, placeholder string, required bool, validate form.StringValidator, theme Theme) FieldInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 254
	ti.Width = 30
	ti.Prompt = ""

	return FieldInput{
		input:    ti,
		label:    label,
		required: required,
		validate: validate,
		theme:    theme,
		width:    40,
	}
}

// Update forwards a message to the text input
func (f FieldInput) Update(msg tea.Msg) (FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.err != "" {
		// Re-check while typing so a fixed value clears its error immediately.
		f.runValidation()
	}
	return f, cmd
}

// Focus gives the field keyboard focus
func (f *FieldInput) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur drops focus and validates what was entered
func (f *FieldInput) Blur() {
	f.input.Blur()
	f.runValidation()
}

func (f *FieldInput) runValidation() {
	f.err = ""
	if f.validate == nil || f.input.Value() == "" {
		return
	}
	if err := f.validate(f.input.Value()); err != nil {
		f.err = err.Error()
	}
}

// Value returns the entered text
func (f FieldInput) Value() string {
	return f.input.Value()
}

// SetValue replaces the entered text
func (f *FieldInput) SetValue(v string) {
	f.input.SetValue(v)
	f.runValidation()
}

// Err returns the inline validation message, if any
func (f FieldInput) Err() string {
	return f.err
}

// SetWidth sets the rendered width
func (f *FieldInput) SetWidth(width int) {
	f.width = width
	inputWidth := width - 6
	if inputWidth < 12 {
		inputWidth = 12
	}
	f.input.Width = inputWidth
}

// Reset clears the text and any error
func (f *FieldInput) Reset() {
	f.input.Reset()
	f.err = ""
}

// View renders label, input and inline error
func (f FieldInput) View(focused bool) string {
	t := f.theme

	label := f.label
	if f.required {
		label += " *"
	}
	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	if focused {
		labelStyle = labelStyle.Foreground(t.Primary).Bold(true)
	}

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(f.width - 2)
	if focused {
		boxStyle = boxStyle.BorderForeground(t.Primary)
	}

	out := labelStyle.Render(label) + "\n" + boxStyle.Render(f.input.View())
	if f.err != "" {
		out += "\n" + t.Renderer.NewStyle().Foreground(t.Danger).Render("  "+f.err)
	}
	return out
}
