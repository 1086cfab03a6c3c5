package model

import (
	"fmt"
	"time"
)

// DateLayout is the default layout for entered and printed dates
const DateLayout = "2006-01-02"

// Period is a date range. Zero times mean the bound is not set.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsComplete returns true if both bounds are set
func (p Period) IsComplete() bool {
	return !p.Start.IsZero() && !p.End.IsZero()
}

// String formats the period for display
func (p Period) String() string {
	return formatDate(p.Start) + " → " + formatDate(p.End)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format(DateLayout)
}

// Request is the assembled analysis request handed to the submission boundary.
// Producers always hand out copies, so a Request value is never shared.
type Request struct {
	ID               string     `json:"id"`
	Scorecard        Scorecard  `json:"scorecard"`
	Metrics          []string   `json:"metrics"`
	Dimensions       []string   `json:"dimensions"`
	Email            string     `json:"email"`
	PeriodStart      time.Time  `json:"period_start"`
	PeriodEnd        time.Time  `json:"period_end"`
	CompareStart     *time.Time `json:"compare_start,omitempty"`
	CompareEnd       *time.Time `json:"compare_end,omitempty"`
	EnableComparison bool       `json:"enable_comparison"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Clone creates a deep copy of the request
func (r Request) Clone() Request {
	clone := r

	if r.Metrics != nil {
		clone.Metrics = make([]string, len(r.Metrics))
		copy(clone.Metrics, r.Metrics)
	}
	if r.Dimensions != nil {
		clone.Dimensions = make([]string, len(r.Dimensions))
		copy(clone.Dimensions, r.Dimensions)
	}
	if r.CompareStart != nil {
		v := *r.CompareStart
		clone.CompareStart = &v
	}
	if r.CompareEnd != nil {
		v := *r.CompareEnd
		clone.CompareEnd = &v
	}

	return clone
}

// Primary returns the primary period
func (r Request) Primary() Period {
	return Period{Start: r.PeriodStart, End: r.PeriodEnd}
}

// Comparison returns the comparison period and whether it applies
func (r Request) Comparison() (Period, bool) {
	if !r.EnableComparison || r.CompareStart == nil || r.CompareEnd == nil {
		return Period{}, false
	}
	return Period{Start: *r.CompareStart, End: *r.CompareEnd}, true
}

// Validate checks the structural integrity of an assembled request
func (r *Request) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("request ID cannot be empty")
	}
	if !r.Scorecard.IsValid() {
		return fmt.Errorf("invalid scorecard: %d", r.Scorecard)
	}
	if len(r.Metrics) == 0 {
		return fmt.Errorf("request has no metrics")
	}
	if !r.Primary().IsComplete() {
		return fmt.Errorf("primary period is incomplete")
	}
	if r.EnableComparison {
		if _, ok := r.Comparison(); !ok {
			return fmt.Errorf("comparison enabled without a comparison period")
		}
	}
	return nil
}
