package form

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		layout  string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-01-31", want: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{in: "  2024-02-29 ", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{in: "31/01/2024", layout: "02/01/2006", want: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{in: "", want: time.Time{}},
		{in: "2024-13-01", wantErr: true},
		{in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in, tt.layout)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}, ""); got != "" {
		t.Errorf("Expected empty string for zero time, got %q", got)
	}
	if got := FormatDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ""); got != "2024-01-05" {
		t.Errorf("Expected 2024-01-05, got %q", got)
	}
}

func TestStringValidators(t *testing.T) {
	if VRequired("  ") == nil {
		t.Error("VRequired should reject blank input")
	}
	if VRequired("x") != nil {
		t.Error("VRequired should accept non-blank input")
	}
	if VEmail("a@b.com") != nil {
		t.Error("VEmail should accept a@b.com")
	}
	if VEmail("a@b") == nil {
		t.Error("VEmail should reject a@b")
	}
	check := VDate("")
	if check("") != nil || check("2024-01-01") != nil {
		t.Error("VDate should accept blank and well-formed dates")
	}
	if check("01-01-2024") == nil {
		t.Error("VDate should reject malformed dates")
	}
}
