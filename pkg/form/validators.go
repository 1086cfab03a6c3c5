package form

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
)

// emailPattern: non-space non-@ runs around a single @ and a dotted domain
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StringValidator validates a single text field.
type StringValidator func(string) error

// VRequired rejects blank strings.
func VRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// VEmail rejects strings that don't match the delivery address pattern.
func VEmail(s string) error {
	if !IsValidEmail(s) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// VDate rejects non-empty strings that don't parse with layout.
func VDate(layout string) StringValidator {
	return func(s string) error {
		if _, err := ParseDate(s, layout); err != nil {
			return err
		}
		return nil
	}
}

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseDate parses a typed date. Blank input means the date is unset and
// yields the zero time without error.
func ParseDate(s, layout string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if layout == "" {
		layout = model.DateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s)", s, layout)
	}
	return t, nil
}

// FormatDate is the inverse of ParseDate. Zero times format as "".
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = model.DateLayout
	}
	return t.Format(layout)
}
