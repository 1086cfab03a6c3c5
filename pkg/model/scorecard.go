package model

import (
	"fmt"
	"strings"
)

// Scorecard identifies a named grouping of related metrics
type Scorecard int

const (
	ScorecardNone Scorecard = iota // not chosen yet
	ScorecardTXN                   // transaction share
	ScorecardTPV                   // payment value share
)

// DefaultDimension is the dimension a fresh draft starts with
const DefaultDimension = "Overall"

var scorecardNames = map[Scorecard]string{
	ScorecardTXN: "Topline TXN Scorecard",
	ScorecardTPV: "Topline TPV Scorecard",
}

var scorecardKeys = map[Scorecard]string{
	ScorecardTXN: "txn",
	ScorecardTPV: "tpv",
}

// scorecardMetrics is the candidate list per scorecard. Order is display order.
var scorecardMetrics = map[Scorecard][]string{
	ScorecardTXN: {
		"APIPL_TXN_APP_SHARE",
		"PAY_TXN_APP_SHARE",
		"EUC_TXN_APP_SHARE",
		"EUC_CORE_TXN_APP_SHARE",
		"GC_CORPRET_TXN_APP_SHARE",
		"GC_INTERNAL_TXN_APP_SHARE",
		"STORES_APP_TXN_APP_SHARE",
		"ACQUIRING_APP_TXN_SHARE",
		"ACQUIRING_PROSTORES3P_TXN_APP_SHARE",
		"CQUIRING_SHOPPING3P_TXN_APP_SHARE",
		"STORES_APP_TXN_SHARE",
	},
	ScorecardTPV: {
		"APIPL_TPV_APP_SHARE",
		"PAY_TPV_APP_SHARE",
		"EUC_TPV_APP_SHARE",
		"EUC_CORE_TPV_APP_SHARE",
		"GC_CORPRET_TPV_APP_SHARE",
		"GC_INTERNAL_TPV_APP_SHARE",
		"STORES_APP_TPV_APP_SHARE",
		"ACQUIRING_TPV_APP_SHARE",
		"ACQUIRING_PROSTORES3P_TPV_APP_SHARE",
		"ACQUIRING_SHOPPING3P_TPV_APP_SHARE",
		"STORES_TPV_APP_SHARE",
	},
}

var dimensions = []string{"Overall", "Use_case", "Sub_usecase"}

// Scorecards returns every selectable scorecard in display order
func Scorecards() []Scorecard {
	return []Scorecard{ScorecardTXN, ScorecardTPV}
}

// String returns the display name, or "" for ScorecardNone
func (s Scorecard) String() string {
	return scorecardNames[s]
}

// Key returns the short identifier used on the command line
func (s Scorecard) Key() string {
	return scorecardKeys[s]
}

// IsValid returns true if the scorecard is a chosen, known value
func (s Scorecard) IsValid() bool {
	_, ok := scorecardNames[s]
	return ok
}

// ParseScorecard resolves a display name or short key (case-insensitive).
// An empty name resolves to ScorecardNone without error.
func ParseScorecard(name string) (Scorecard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ScorecardNone, nil
	}
	for _, sc := range Scorecards() {
		if strings.EqualFold(name, sc.String()) || strings.EqualFold(name, sc.Key()) {
			return sc, nil
		}
	}
	return ScorecardNone, fmt.Errorf("unknown scorecard: %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (s Scorecard) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Scorecard) UnmarshalText(text []byte) error {
	sc, err := ParseScorecard(string(text))
	if err != nil {
		return err
	}
	*s = sc
	return nil
}

// Metrics returns a copy of the candidate metrics for a scorecard.
// Unset or unknown scorecards have no candidates.
func Metrics(s Scorecard) []string {
	list, ok := scorecardMetrics[s]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Dimensions returns a copy of the breakdown dimensions shared by all scorecards
func Dimensions() []string {
	out := make([]string, len(dimensions))
	copy(out, dimensions)
	return out
}
