// Package selection implements the set semantics behind the multi-select widget.
//
// The widget owns no selection data. Callers hand it a Control describing the
// candidate options, the current selection and a change callback; every
// operation computes the next selection and reports it through OnChange.
package selection

import (
	"strconv"
)

// MaxChips is the largest selection rendered as individual chips
const MaxChips = 3

// DefaultPlaceholder is shown when nothing is selected
const DefaultPlaceholder = "Select options..."

// Selection is a set of chosen options. Order carries no meaning beyond
// display truncation.
type Selection []string

// Contains reports whether option is selected
func (s Selection) Contains(option string) bool {
	for _, item := range s {
		if item == option {
			return true
		}
	}
	return false
}

// Len returns the number of selected options
func (s Selection) Len() int {
	return len(s)
}

// Equal reports set equality, ignoring order
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	counts := make(map[string]int, len(s))
	for _, item := range s {
		counts[item]++
	}
	for _, item := range other {
		if counts[item] == 0 {
			return false
		}
		counts[item]--
	}
	return true
}

// Without returns a new selection with option removed
func (s Selection) Without(option string) Selection {
	out := make(Selection, 0, len(s))
	for _, item := range s {
		if item != option {
			out = append(out, item)
		}
	}
	return out
}

// With returns a new selection with option appended if absent
func (s Selection) With(option string) Selection {
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	if !s.Contains(option) {
		out = append(out, option)
	}
	return out
}

// Within returns the members of s that appear in options, keeping s's order
func (s Selection) Within(options []string) Selection {
	allowed := make(map[string]bool, len(options))
	for _, o := range options {
		allowed[o] = true
	}
	out := make(Selection, 0, len(s))
	for _, item := range s {
		if allowed[item] && !out.Contains(item) {
			out = append(out, item)
		}
	}
	return out
}

// Control is the controlled-value contract between a selection owner and the widget
type Control struct {
	Options  []string
	Selected Selection
	OnChange func(Selection)
	Disabled bool
}

// IsOption reports whether option belongs to the candidate list
func (c Control) IsOption(option string) bool {
	for _, o := range c.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Toggle removes option if selected, otherwise adds it.
// Disabled controls and options outside the candidate list emit nothing.
func (c Control) Toggle(option string) {
	if c.Disabled || !c.IsOption(option) {
		return
	}
	if c.Selected.Contains(option) {
		c.emit(c.Selected.Without(option))
		return
	}
	c.emit(c.Selected.With(option))
}

// SelectAll emits the full candidate list regardless of the current selection
func (c Control) SelectAll() {
	if c.Disabled {
		return
	}
	all := make(Selection, len(c.Options))
	copy(all, c.Options)
	c.emit(all)
}

// ClearAll emits the empty selection
func (c Control) ClearAll() {
	if c.Disabled {
		return
	}
	c.emit(Selection{})
}

// RemoveOne removes a selected option. It never adds, so an option that is
// not selected emits nothing.
func (c Control) RemoveOne(option string) {
	if c.Disabled || !c.Selected.Contains(option) {
		return
	}
	c.emit(c.Selected.Without(option))
}

func (c Control) emit(next Selection) {
	if c.OnChange != nil {
		c.OnChange(next)
	}
}

// DisplayMode is how the closed widget presents its selection
type DisplayMode int

const (
	DisplayPlaceholder DisplayMode = iota // nothing selected
	DisplayChips                          // one removable chip per option
	DisplaySummary                        // a single "N selected" chip
)

// String returns a short name for the mode
func (m DisplayMode) String() string {
	switch m {
	case DisplayPlaceholder:
		return "placeholder"
	case DisplayChips:
		return "chips"
	case DisplaySummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Display describes what the closed widget shows
type Display struct {
	Mode  DisplayMode
	Text  string   // placeholder or summary text
	Chips []string // removable chips, in selection order
}

// Summarize applies the display rule to a selection
func Summarize(selected Selection, placeholder string) Display {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	switch n := len(selected); {
	case n == 0:
		return Display{Mode: DisplayPlaceholder, Text: placeholder}
	case n <= MaxChips:
		chips := make([]string, n)
		copy(chips, selected)
		return Display{Mode: DisplayChips, Chips: chips}
	default:
		return Display{Mode: DisplaySummary, Text: strconv.Itoa(n) + " selected"}
	}
}
