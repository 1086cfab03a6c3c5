package ui

// Layout breakpoints for responsive design.
const (
	// BreakpointNarrow is the width below which fields stack one per row.
	BreakpointNarrow = 80

	// BreakpointMedium is the width above which paired date fields sit side by side.
	BreakpointMedium = 100
)

// Box and panel dimension constraints.
const (
	// MinBoxWidth is the minimum width for bordered content boxes.
	MinBoxWidth = 40

	// MaxBoxWidth keeps the form readable on very wide terminals.
	MaxBoxWidth = 110

	// MaxVisibleOptions caps the rows an open multi-select shows at once.
	MaxVisibleOptions = 8
)

// boxWidth clamps a terminal width into the form box width
func boxWidth(termWidth int) int {
	w := termWidth - 4
	if w < MinBoxWidth {
		w = MinBoxWidth
	}
	if w > MaxBoxWidth {
		w = MaxBoxWidth
	}
	return w
}
