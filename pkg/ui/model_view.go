package ui

import (
	"strings"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.notice.IsVisible() {
		return m.overlay(m.notice.View())
	}
	if m.help.IsVisible() {
		return m.overlay(m.help.View())
	}

	sections := []string{
		m.renderHeader(),
		m.renderParameters(),
		m.renderNextSteps(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) overlay(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	t := m.theme
	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Analytics Dashboard")
	sub := t.Renderer.NewStyle().Foreground(t.Subtext).Render("Compare metrics across time periods and dimensions")
	return title + "\n" + sub + "\n"
}

func (m Model) renderParameters() string {
	t := m.theme
	width := boxWidth(m.width)
	inner := width - 4

	var rows []string
	rows = append(rows, t.Renderer.NewStyle().Bold(true).Render("Analysis Parameters"))
	rows = append(rows, RenderDivider(inner))

	rows = append(rows, m.sectionLabel("Scorecard Type", true, m.focus == focusScorecard))
	rows = append(rows, m.renderScorecard())
	rows = append(rows, "")

	metricCtl := m.draft.MetricControl()
	rows = append(rows, m.sectionLabel("Select Metrics", true, m.focus == focusMetrics))
	rows = append(rows, m.metrics.View(metricCtl, m.focus == focusMetrics))
	if metricCtl.Disabled {
		rows = append(rows, t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).Render("  Choose a scorecard first"))
	}
	rows = append(rows, "")

	rows = append(rows, m.sectionLabel("Dimensions", false, m.focus == focusDimensions))
	rows = append(rows, m.dimensions.View(m.draft.DimensionControl(), m.focus == focusDimensions))
	rows = append(rows, "")

	rows = append(rows, m.email.View(m.focus == focusEmail))
	rows = append(rows, "")

	rows = append(rows, m.sectionLabel("Primary Period", true, false))
	rows = append(rows, m.pair(m.start.View(m.focus == focusStart), m.end.View(m.focus == focusEnd)))
	rows = append(rows, "")

	rows = append(rows, m.renderCompareToggle())
	if m.draft.ComparisonEnabled() {
		box := t.Renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1)
		compare := m.sectionLabel("Comparison Period", true, false) + "\n" +
			m.pair(m.compareStart.View(m.focus == focusCompareStart), m.compareEnd.View(m.focus == focusCompareEnd))
		rows = append(rows, box.Render(compare))
	}
	rows = append(rows, "")

	rows = append(rows, RenderButton("Analyze Data", m.focus == focusSubmit, t))

	card := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width)
	return card.Render(strings.Join(rows, "\n"))
}

func (m Model) sectionLabel(label string, required, focused bool) string {
	t := m.theme
	if required {
		label += " *"
	}
	style := t.Renderer.NewStyle().Foreground(t.Subtext)
	if focused {
		style = style.Foreground(t.Primary).Bold(true)
	}
	return style.Render(label)
}

func (m Model) renderScorecard() string {
	t := m.theme
	focused := m.focus == focusScorecard

	sc := m.draft.Scorecard()
	value := t.Renderer.NewStyle().Foreground(t.Subtext).Italic(true).Render("Select scorecard type")
	if sc.IsValid() {
		value = t.Renderer.NewStyle().Foreground(t.Base.GetForeground()).Bold(true).Render(sc.String())
	}

	arrowStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	prefix := "  "
	if focused {
		arrowStyle = arrowStyle.Foreground(t.Primary)
		prefix = "▸ "
	}

	var cards []string
	for _, c := range model.Scorecards() {
		marker := "○"
		if c == sc {
			marker = "●"
		}
		cards = append(cards, marker+" "+c.Key())
	}
	options := t.Renderer.NewStyle().Foreground(t.Subtext).Faint(true).Render("  (" + strings.Join(cards, "  ") + ")")

	return prefix + arrowStyle.Render("‹ ") + value + arrowStyle.Render(" ›") + options
}

func (m Model) renderCompareToggle() string {
	t := m.theme
	focused := m.focus == focusCompare
	prefix := "  "
	style := t.Renderer.NewStyle().Foreground(t.Base.GetForeground())
	if focused {
		prefix = "▸ "
		style = style.Foreground(t.Primary).Bold(true)
	}
	return prefix + RenderCheckbox(m.draft.ComparisonEnabled(), t) + " " + style.Render("Enable Date Comparison")
}

// pair lays two fields side by side on wide terminals, stacked otherwise
func (m Model) pair(left, right string) string {
	if m.width >= BreakpointMedium {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return left + "\n" + right
}

func (m Model) renderNextSteps() string {
	t := m.theme
	title := t.Renderer.NewStyle().Bold(true).Foreground(t.Secondary).Render("Next Steps")
	body := t.Renderer.NewStyle().Foreground(t.Subtext).Render(
		"Pick a scorecard, choose metrics and a period, then submit.\n" +
			"Results are sent to the email address once the reporting backend is connected.")
	card := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(boxWidth(m.width))
	return card.Render(title + "\n" + body)
}

func (m Model) renderFooter() string {
	t := m.theme
	hint := "tab next • shift+tab prev • ctrl+s submit • ? help • ctrl+c quit"
	if m.width > 0 && m.width < BreakpointNarrow {
		hint = "tab • ctrl+s • ? • ctrl+c"
	}
	return t.Renderer.NewStyle().Faint(true).Render(hint)
}
