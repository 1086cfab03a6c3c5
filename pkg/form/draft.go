// Package form holds the scorecard request draft, its validation rules and
// the assembly of the final request payload.
package form

import (
	"strings"
	"time"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/selection"

	"github.com/google/uuid"
)

// Draft is the in-memory request being edited. It is never persisted.
type Draft struct {
	scorecard  model.Scorecard
	metrics    selection.Selection
	dimensions selection.Selection
	email      string

	primary    model.Period
	comparison model.Period
	compare    bool
}

// New creates an empty draft with the default dimension selected
func New() *Draft {
	d := &Draft{}
	d.Reset()
	return d
}

// Reset returns the draft to its initial state
func (d *Draft) Reset() {
	*d = Draft{
		dimensions: selection.Selection{model.DefaultDimension},
	}
}

// Scorecard returns the chosen scorecard
func (d *Draft) Scorecard() model.Scorecard { return d.scorecard }

// SetScorecard changes the scorecard. The metric selection is always reset,
// because the candidate universe changed.
func (d *Draft) SetScorecard(sc model.Scorecard) {
	d.scorecard = sc
	d.metrics = selection.Selection{}
}

// MetricOptions returns the candidate metrics for the chosen scorecard
func (d *Draft) MetricOptions() []string {
	return model.Metrics(d.scorecard)
}

// Metrics returns a copy of the selected metrics
func (d *Draft) Metrics() selection.Selection {
	return copySelection(d.metrics)
}

// SetMetrics replaces the metric selection, dropping anything that is not a
// candidate of the current scorecard
func (d *Draft) SetMetrics(s selection.Selection) {
	d.metrics = s.Within(d.MetricOptions())
}

// Dimensions returns a copy of the selected dimensions
func (d *Draft) Dimensions() selection.Selection {
	return copySelection(d.dimensions)
}

// SetDimensions replaces the dimension selection
func (d *Draft) SetDimensions(s selection.Selection) {
	d.dimensions = s.Within(model.Dimensions())
}

// MetricControl binds the metric selection to a widget. It is disabled until
// a scorecard is chosen.
func (d *Draft) MetricControl() selection.Control {
	return selection.Control{
		Options:  d.MetricOptions(),
		Selected: d.Metrics(),
		OnChange: d.SetMetrics,
		Disabled: !d.scorecard.IsValid(),
	}
}

// DimensionControl binds the dimension selection to a widget
func (d *Draft) DimensionControl() selection.Control {
	return selection.Control{
		Options:  model.Dimensions(),
		Selected: d.Dimensions(),
		OnChange: d.SetDimensions,
	}
}

// Email returns the delivery address as entered
func (d *Draft) Email() string { return d.email }

// SetEmail stores the delivery address
func (d *Draft) SetEmail(email string) { d.email = email }

// Primary returns the primary period
func (d *Draft) Primary() model.Period { return d.primary }

// SetStart sets the primary period start; the zero time unsets it
func (d *Draft) SetStart(t time.Time) { d.primary.Start = t }

// SetEnd sets the primary period end; the zero time unsets it
func (d *Draft) SetEnd(t time.Time) { d.primary.End = t }

// ComparisonEnabled reports whether a comparison period is requested
func (d *Draft) ComparisonEnabled() bool { return d.compare }

// SetComparison toggles the comparison period. Stored comparison dates are
// kept either way so they reappear when comparison is enabled again.
func (d *Draft) SetComparison(enabled bool) { d.compare = enabled }

// Comparison returns the stored comparison period, even when disabled
func (d *Draft) Comparison() model.Period { return d.comparison }

// SetCompareStart sets the comparison period start
func (d *Draft) SetCompareStart(t time.Time) { d.comparison.Start = t }

// SetCompareEnd sets the comparison period end
func (d *Draft) SetCompareEnd(t time.Time) { d.comparison.End = t }

// Validate runs the submit checks in order and reports the first failure
func (d *Draft) Validate() error {
	email := strings.TrimSpace(d.email)

	if !d.scorecard.IsValid() || d.metrics.Len() == 0 || !d.primary.IsComplete() || email == "" {
		return newValidationError(ErrMissingRequired)
	}
	if d.compare && !d.comparison.IsComplete() {
		return newValidationError(ErrMissingComparisonDates)
	}
	if !IsValidEmail(email) {
		return newValidationError(ErrInvalidEmail)
	}
	return nil
}

// Assemble validates the draft and builds the request payload. now stamps
// CreatedAt; nil means time.Now.
func (d *Draft) Assemble(now func() time.Time) (model.Request, error) {
	if err := d.Validate(); err != nil {
		return model.Request{}, err
	}
	if now == nil {
		now = time.Now
	}

	req := model.Request{
		ID:               uuid.NewString(),
		Scorecard:        d.scorecard,
		Metrics:          []string(d.Metrics()),
		Dimensions:       []string(d.Dimensions()),
		Email:            strings.TrimSpace(d.email),
		PeriodStart:      d.primary.Start,
		PeriodEnd:        d.primary.End,
		EnableComparison: d.compare,
		CreatedAt:        now(),
	}
	if d.compare {
		cs, ce := d.comparison.Start, d.comparison.End
		req.CompareStart = &cs
		req.CompareEnd = &ce
	}
	return req, nil
}

func copySelection(s selection.Selection) selection.Selection {
	out := make(selection.Selection, len(s))
	copy(out, s)
	return out
}
