package ui

import (
	"context"
	"time"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/form"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/selection"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/submit"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// focusField identifies a stop in the form's focus ring
type focusField int

const (
	focusScorecard focusField = iota
	focusMetrics
	focusDimensions
	focusEmail
	focusStart
	focusEnd
	focusCompare
	focusCompareStart
	focusCompareEnd
	focusSubmit
)

// Options configures the request form screen
type Options struct {
	DefaultEmail string
	DateLayout   string
	// CopyToClipboard enables "y" on the success notice; nil disables it
	CopyToClipboard func(string) error
}

// Model is the request form screen. It owns the draft; child widgets only
// see it through selection controls and field values.
type Model struct {
	draft     *form.Draft
	submitter submit.Submitter
	logger    *zap.Logger
	opts      Options
	now       func() time.Time

	theme Theme
	focus focusField

	scorecardIdx int // index into model.Scorecards(), -1 when unset

	metrics    MultiSelectModel
	dimensions MultiSelectModel

	email        FieldInput
	start        FieldInput
	end          FieldInput
	compareStart FieldInput
	compareEnd   FieldInput

	notice         NoticeModel
	help           HelpOverlayModel
	resetOnDismiss bool
	lastRequest    *model.Request

	width  int
	height int
}

// NewModel creates the form screen with an empty draft
func NewModel(opts Options, submitter submit.Submitter, logger *zap.Logger, theme Theme) Model {
	if opts.DateLayout == "" {
		opts.DateLayout = model.DateLayout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if submitter == nil {
		submitter = submit.NewAcknowledger(logger)
	}

	dateHint := "e.g. " + time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC).Format(opts.DateLayout)
	validDate := form.VDate(opts.DateLayout)

	m := Model{
		draft:        form.New(),
		submitter:    submitter,
		logger:       logger,
		opts:         opts,
		now:          time.Now,
		theme:        theme,
		scorecardIdx: -1,
		metrics:      NewMultiSelectModel("Select Metrics", "Select metrics", theme),
		dimensions:   NewMultiSelectModel("Dimensions", "Select dimensions", theme),
		email:        NewFieldInput("Email", "you@example.com", true, form.VEmail, theme),
		start:        NewFieldInput("Start Date", dateHint, true, validDate, theme),
		end:          NewFieldInput("End Date", dateHint, true, validDate, theme),
		compareStart: NewFieldInput("Compare Start Date", dateHint, false, validDate, theme),
		compareEnd:   NewFieldInput("Compare End Date", dateHint, false, validDate, theme),
		notice:       NewNoticeModel(theme, opts.CopyToClipboard),
		help:         NewHelpOverlayModel(theme),
	}
	m.applyDefaults()
	return m
}

func (m *Model) applyDefaults() {
	if m.opts.DefaultEmail != "" {
		m.email.SetValue(m.opts.DefaultEmail)
		m.draft.SetEmail(m.opts.DefaultEmail)
	}
}

// Draft exposes the draft being edited
func (m Model) Draft() *form.Draft {
	return m.draft
}

// LastRequest returns the most recently submitted request, if any
func (m Model) LastRequest() (model.Request, bool) {
	if m.lastRequest == nil {
		return model.Request{}, false
	}
	return m.lastRequest.Clone(), true
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input messages go to the focused text field.
	return m.updateFocusedField(msg)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	w := boxWidth(width) - 4
	m.metrics.SetWidth(w)
	m.dimensions.SetWidth(w)
	m.email.SetWidth(w)
	half := w
	if width >= BreakpointMedium {
		half = w/2 - 1
	}
	for _, f := range []*FieldInput{&m.start, &m.end, &m.compareStart, &m.compareEnd} {
		f.SetWidth(half)
	}
	m.notice.SetWidth(width)
	m.help.SetSize(width, height)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.notice.IsVisible() {
		if m.notice.HandleKey(key) && m.resetOnDismiss {
			m.resetForm()
		}
		return m, nil
	}
	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return m, nil
	}
	if key == "ctrl+s" {
		m.submit()
		return m, nil
	}

	if ms, ctl, ok := m.focusedMultiSelect(); ok {
		if ms.HandleKey(key, ctl) {
			return m, nil
		}
	}

	if !m.inTextField() {
		switch key {
		case "q":
			return m, tea.Quit
		case "?":
			m.help.Toggle()
			return m, nil
		}
	}

	switch key {
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	}

	switch m.focus {
	case focusScorecard:
		switch {
		case key == "left" || key == "h":
			m.cycleScorecard(-1)
		case key == "right" || key == "l" || key == "enter" || isSpaceKey(key):
			m.cycleScorecard(1)
		}
		return m, nil
	case focusCompare:
		if key == "enter" || isSpaceKey(key) {
			m.draft.SetComparison(!m.draft.ComparisonEnabled())
		}
		return m, nil
	case focusSubmit:
		if key == "enter" || isSpaceKey(key) {
			m.submit()
		}
		return m, nil
	}

	if m.inTextField() {
		if key == "enter" {
			return m, m.moveFocus(1)
		}
		return m.updateFocusedField(msg)
	}
	return m, nil
}

// cycleScorecard steps through the scorecards. Every change resets the
// metric selection through the draft.
func (m *Model) cycleScorecard(delta int) {
	cards := model.Scorecards()
	n := len(cards)
	if m.scorecardIdx < 0 {
		if delta > 0 {
			m.scorecardIdx = 0
		} else {
			m.scorecardIdx = n - 1
		}
	} else {
		m.scorecardIdx = (m.scorecardIdx + delta + n) % n
	}
	m.draft.SetScorecard(cards[m.scorecardIdx])
	m.metrics.Close()
}

// focusOrder lists the reachable fields; comparison dates only while enabled
func (m Model) focusOrder() []focusField {
	order := []focusField{
		focusScorecard, focusMetrics, focusDimensions, focusEmail,
		focusStart, focusEnd, focusCompare,
	}
	if m.draft.ComparisonEnabled() {
		order = append(order, focusCompareStart, focusCompareEnd)
	}
	return append(order, focusSubmit)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	next := order[(idx+delta+len(order))%len(order)]
	return m.setFocus(next)
}

func (m *Model) setFocus(next focusField) tea.Cmd {
	if f := m.fieldFor(m.focus); f != nil {
		f.Blur()
		m.syncField(m.focus)
		m.normalizeDate(m.focus)
	}
	m.metrics.Close()
	m.dimensions.Close()

	m.focus = next
	if f := m.fieldFor(next); f != nil {
		return f.Focus()
	}
	return nil
}

func (m *Model) focusedMultiSelect() (*MultiSelectModel, selection.Control, bool) {
	switch m.focus {
	case focusMetrics:
		return &m.metrics, m.draft.MetricControl(), true
	case focusDimensions:
		return &m.dimensions, m.draft.DimensionControl(), true
	}
	return nil, selection.Control{}, false
}

func (m *Model) fieldFor(f focusField) *FieldInput {
	switch f {
	case focusEmail:
		return &m.email
	case focusStart:
		return &m.start
	case focusEnd:
		return &m.end
	case focusCompareStart:
		return &m.compareStart
	case focusCompareEnd:
		return &m.compareEnd
	}
	return nil
}

func (m Model) inTextField() bool {
	return m.fieldFor(m.focus) != nil
}

func (m Model) updateFocusedField(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.fieldFor(m.focus)
	if f == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*f, cmd = f.Update(msg)
	m.syncField(m.focus)
	return m, cmd
}

// syncField copies a text field into the draft. Dates that do not parse
// leave the draft date unset; the field shows the parse error inline.
func (m *Model) syncField(f focusField) {
	switch f {
	case focusEmail:
		m.draft.SetEmail(m.email.Value())
	case focusStart:
		m.draft.SetStart(m.parseDate(m.start.Value()))
	case focusEnd:
		m.draft.SetEnd(m.parseDate(m.end.Value()))
	case focusCompareStart:
		m.draft.SetCompareStart(m.parseDate(m.compareStart.Value()))
	case focusCompareEnd:
		m.draft.SetCompareEnd(m.parseDate(m.compareEnd.Value()))
	}
}

// normalizeDate rewrites a parsed date field in the configured layout
func (m *Model) normalizeDate(f focusField) {
	var t time.Time
	switch f {
	case focusStart:
		t = m.draft.Primary().Start
	case focusEnd:
		t = m.draft.Primary().End
	case focusCompareStart:
		t = m.draft.Comparison().Start
	case focusCompareEnd:
		t = m.draft.Comparison().End
	default:
		return
	}
	if t.IsZero() {
		return
	}
	m.fieldFor(f).SetValue(form.FormatDate(t, m.opts.DateLayout))
}

func (m Model) parseDate(s string) time.Time {
	t, err := form.ParseDate(s, m.opts.DateLayout)
	if err != nil {
		return time.Time{}
	}
	return t
}

// submit validates the draft and hands the request to the submitter. A
// failure keeps the draft for editing; success discards it once the
// acknowledgement is dismissed.
func (m *Model) submit() {
	// Pick up whatever is in the focused field without waiting for blur.
	m.syncField(m.focus)

	req, err := m.draft.Assemble(m.now)
	if err != nil {
		m.logger.Debug("submit rejected", zap.Error(err))
		m.notice.ShowError(err.Error())
		m.resetOnDismiss = false
		return
	}

	receipt, err := m.submitter.Submit(context.Background(), req)
	if err != nil {
		m.logger.Error("submission failed", zap.String("request_id", req.ID), zap.Error(err))
		m.notice.ShowError("Submission failed: " + err.Error())
		m.resetOnDismiss = false
		return
	}

	body, err := submit.RenderSummary(req, boxWidth(m.width)-16)
	if err != nil {
		m.logger.Warn("render summary", zap.Error(err))
		body = submit.Summary(req)
	}
	payload, err := submit.PayloadJSON(req)
	if err != nil {
		m.logger.Warn("encode payload", zap.Error(err))
	}

	m.lastRequest = &req
	m.notice.ShowSuccess(receipt.Message, body, payload)
	m.resetOnDismiss = true
}

func (m *Model) resetForm() {
	m.draft.Reset()
	m.scorecardIdx = -1
	m.metrics.Close()
	m.dimensions.Close()
	for _, f := range []*FieldInput{&m.email, &m.start, &m.end, &m.compareStart, &m.compareEnd} {
		f.Blur()
		f.Reset()
	}
	m.focus = focusScorecard
	m.resetOnDismiss = false
	m.applyDefaults()
}
