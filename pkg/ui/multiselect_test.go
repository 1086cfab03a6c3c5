package ui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/selection"
)

// harness owns the selection the way a parent form would
type harness struct {
	options  []string
	selected selection.Selection
	disabled bool
	changes  int
}

func (h *harness) control() selection.Control {
	return selection.Control{
		Options:  h.options,
		Selected: h.selected,
		Disabled: h.disabled,
		OnChange: func(s selection.Selection) {
			h.selected = s
			h.changes++
		},
	}
}

func (h *harness) press(m *MultiSelectModel, keys ...string) {
	for _, k := range keys {
		m.HandleKey(k, h.control())
	}
}

func newHarness() *harness {
	return &harness{options: []string{"alpha", "beta", "gamma", "delta", "epsilon"}}
}

func TestMultiSelectOpenToggleClose(t *testing.T) {
	h := newHarness()
	m := NewMultiSelectModel("Metrics", "", testTheme())

	h.press(&m, "enter")
	if !m.IsOpen() {
		t.Fatal("enter should open the list")
	}
	h.press(&m, " ", "down", "down", "x")
	if diff := cmp.Diff(selection.Selection{"alpha", "gamma"}, h.selected); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}

	// Toggling again removes it.
	h.press(&m, "x")
	if diff := cmp.Diff(selection.Selection{"alpha"}, h.selected); diff != "" {
		t.Errorf("after second toggle (-want +got):\n%s", diff)
	}

	h.press(&m, "esc")
	if m.IsOpen() {
		t.Error("esc should close the list")
	}
}

func TestMultiSelectSelectAllClearAll(t *testing.T) {
	h := newHarness()
	m := NewMultiSelectModel("Metrics", "", testTheme())

	h.press(&m, "enter", "a")
	if diff := cmp.Diff(selection.Selection(h.options), h.selected); diff != "" {
		t.Errorf("select all (-want +got):\n%s", diff)
	}
	h.press(&m, "c")
	if len(h.selected) != 0 {
		t.Errorf("clear all left %v", h.selected)
	}
}

func TestMultiSelectChipRemoveDoesNotOpen(t *testing.T) {
	h := newHarness()
	h.selected = selection.Selection{"alpha", "beta"}
	m := NewMultiSelectModel("Metrics", "", testTheme())

	h.press(&m, "right", "backspace")
	if m.IsOpen() {
		t.Error("removing a chip opened the list")
	}
	if diff := cmp.Diff(selection.Selection{"alpha"}, h.selected); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
	if h.changes != 1 {
		t.Errorf("changes = %d, want 1", h.changes)
	}
}

func TestMultiSelectDisabledIgnoresKeys(t *testing.T) {
	h := newHarness()
	h.disabled = true
	m := NewMultiSelectModel("Metrics", "", testTheme())

	for _, k := range []string{"enter", " ", "a", "x"} {
		if m.HandleKey(k, h.control()) {
			t.Errorf("disabled widget consumed %q", k)
		}
	}
	if m.IsOpen() || h.changes != 0 {
		t.Errorf("disabled widget changed state: open=%v changes=%d", m.IsOpen(), h.changes)
	}
}

func TestMultiSelectUnhandledKeysReachParent(t *testing.T) {
	h := newHarness()
	m := NewMultiSelectModel("Metrics", "", testTheme())

	for _, k := range []string{"tab", "shift+tab", "up", "down", "q"} {
		if m.HandleKey(k, h.control()) {
			t.Errorf("closed widget consumed %q", k)
		}
	}

	h.press(&m, "enter")
	if m.HandleKey("tab", h.control()) {
		t.Error("tab while open should still move focus")
	}
	if m.IsOpen() {
		t.Error("tab should close the list")
	}
}

func TestMultiSelectFilter(t *testing.T) {
	h := newHarness()
	m := NewMultiSelectModel("Metrics", "", testTheme())

	h.press(&m, "enter", "/", "g", "m")
	if !m.IsFiltering() || m.FilterValue() != "gm" {
		t.Fatalf("filter state: filtering=%v value=%q", m.IsFiltering(), m.FilterValue())
	}

	// While filtering letters extend the query instead of running commands.
	if len(h.selected) != 0 {
		t.Fatalf("filter keys changed selection: %v", h.selected)
	}

	h.press(&m, "enter", " ")
	if diff := cmp.Diff(selection.Selection{"gamma"}, h.selected); diff != "" {
		t.Errorf("toggle in filtered list (-want +got):\n%s", diff)
	}

	h.press(&m, "/", "backspace", "backspace", "esc")
	if m.FilterValue() != "" {
		t.Errorf("esc left filter %q", m.FilterValue())
	}
}

func TestMultiSelectView(t *testing.T) {
	tests := []struct {
		name     string
		selected selection.Selection
		want     []string
		notWant  []string
	}{
		{"placeholder", nil, []string{"Pick some"}, []string{"selected"}},
		{"chips", selection.Selection{"alpha", "beta", "gamma"}, []string{"alpha ×", "beta ×", "gamma ×"}, []string{"3 selected"}},
		{"summary", selection.Selection{"alpha", "beta", "gamma", "delta"}, []string{"4 selected"}, []string{"alpha ×"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.selected = tt.selected
			m := NewMultiSelectModel("Metrics", "Pick some", testTheme())
			view := m.View(h.control(), false)
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("view missing %q:\n%s", w, view)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("view unexpectedly contains %q:\n%s", w, view)
				}
			}
		})
	}
}

func TestMultiSelectViewOpenList(t *testing.T) {
	h := newHarness()
	h.selected = selection.Selection{"beta"}
	m := NewMultiSelectModel("Metrics", "", testTheme())
	h.press(&m, "enter")

	view := m.View(h.control(), true)
	if !strings.Contains(view, "[a] Select All") {
		t.Error("action hint missing")
	}
	if !strings.Contains(view, "[✓]") || !strings.Contains(view, "[ ]") {
		t.Error("checkbox markers missing")
	}
}
