package classify

import (
	"strings"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// AssignMatchType determines the preliminary match type for a record.
// Word count sets the base (1 word broad, 2 phrase, 3+ exact), then two
// overrides run in a fixed order: high commercial intent forces phrase,
// and the volume override runs after it, so very high or very low volume
// takes precedence even for high-intent keywords.
//
// TODO: confirm with product whether the volume override is meant to beat
// the commercial-intent override for high-volume, high-intent keywords;
// current behavior is kept for output parity.
func AssignMatchType(r *types.KeywordRecord) {
	wordCount := len(strings.Fields(r.Text))

	matchType := types.MatchBroad
	switch {
	case wordCount == 2:
		matchType = types.MatchPhrase
	case wordCount >= 3:
		matchType = types.MatchExact
	}

	if r.CommercialIntent > 0.7 {
		matchType = types.MatchPhrase
	}

	if r.SearchVolume > 10000 {
		matchType = types.MatchBroad
	} else if r.SearchVolume < 1000 {
		matchType = types.MatchExact
	}

	r.PreliminaryMatchType = matchType
}

// KeywordType classifies a keyword for display: broad (1 word),
// phrase (2 words), or long-tail (3+).
func KeywordType(keyword string) string {
	switch len(strings.Fields(keyword)) {
	case 1:
		return "broad"
	case 2:
		return "phrase"
	default:
		return "long-tail"
	}
}
