package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoticeKind distinguishes failure notices from acknowledgements
type NoticeKind int

const (
	NoticeError NoticeKind = iota
	NoticeSuccess
)

// NoticeModel is the blocking modal shown after a submit attempt
type NoticeModel struct {
	visible bool
	kind    NoticeKind
	title   string
	message string
	body    string // pre-rendered detail, may be empty
	payload string // JSON for clipboard copy, success only

	copyFn  func(string) error
	copyMsg string

	width int
	theme Theme
}

// NewNoticeModel creates a hidden notice. copyFn is nil when clipboard
// support is off.
func NewNoticeModel(theme Theme, copyFn func(string) error) NoticeModel {
	return NoticeModel{
		theme:  theme,
		copyFn: copyFn,
	}
}

// ShowError displays a validation or submission failure
func (m *NoticeModel) ShowError(message string) {
	*m = NoticeModel{
		visible: true,
		kind:    NoticeError,
		title:   "Cannot submit",
		message: message,
		copyFn:  m.copyFn,
		width:   m.width,
		theme:   m.theme,
	}
}

// ShowSuccess displays the acknowledgement with a rendered request summary
func (m *NoticeModel) ShowSuccess(message, body, payload string) {
	*m = NoticeModel{
		visible: true,
		kind:    NoticeSuccess,
		title:   "Request submitted",
		message: message,
		body:    body,
		payload: payload,
		copyFn:  m.copyFn,
		width:   m.width,
		theme:   m.theme,
	}
}

// IsVisible returns true while the notice blocks the form
func (m NoticeModel) IsVisible() bool {
	return m.visible
}

// Kind returns the notice kind
func (m NoticeModel) Kind() NoticeKind {
	return m.kind
}

// Message returns the headline message
func (m NoticeModel) Message() string {
	return m.message
}

// SetWidth sets the available width
func (m *NoticeModel) SetWidth(width int) {
	m.width = width
}

// HandleKey processes a key and reports whether the notice was dismissed.
// "y" copies the payload on success notices; every other key dismisses.
func (m *NoticeModel) HandleKey(key string) (dismissed bool) {
	if !m.visible {
		return false
	}
	if key == "y" && m.canCopy() {
		if err := m.copyFn(m.payload); err != nil {
			m.copyMsg = "Copy failed: " + err.Error()
		} else {
			m.copyMsg = "Payload copied to clipboard"
		}
		return false
	}
	m.visible = false
	return true
}

func (m NoticeModel) canCopy() bool {
	return m.kind == NoticeSuccess && m.copyFn != nil && m.payload != ""
}

// View renders the modal box
func (m NoticeModel) View() string {
	if !m.visible {
		return ""
	}
	t := m.theme

	width := 64
	if m.width > 0 && m.width < 74 {
		width = m.width - 10
	}
	if width < 30 {
		width = 30
	}

	accent := t.Danger
	if m.kind == NoticeSuccess {
		accent = t.Success
	}

	var b strings.Builder

	titleStyle := t.Renderer.NewStyle().
		Bold(true).
		Foreground(accent).
		Width(width - 6).
		Align(lipgloss.Center)
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	b.WriteString(t.Renderer.NewStyle().Foreground(t.Base.GetForeground()).Render(m.message))
	b.WriteString("\n")

	if m.body != "" {
		b.WriteString("\n")
		b.WriteString(m.body)
		b.WriteString("\n")
	}

	if m.copyMsg != "" {
		b.WriteString("\n")
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Secondary).Render(m.copyMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "[Any key] Dismiss"
	if m.canCopy() {
		hint = "[y] Copy payload  " + hint
	}
	b.WriteString(t.Renderer.NewStyle().Faint(true).Render(hint))

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(width)

	return boxStyle.Render(b.String())
}
