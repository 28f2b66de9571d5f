// Package scoring computes the composite difficulty and relevance scores.
// The difficulty model is the single most load-bearing algorithm in the
// system: downstream bid and budget heuristics assume its 0-100 scale, so
// the additive terms, their order, and the clamp must not change.
package scoring

import (
	"strings"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

var brandIndicators = []string{"brand", "company", "official", "homepage", "website"}

var localIndicators = []string{"near me", "local", "nearby", "location", "area", "city", "state"}

// Difficulty computes a 0-100 difficulty score (higher = harder) from the
// keyword text and its metrics. Terms are summed independently then clamped:
// word-count base, competition x30, volume tier, commercial intent x15,
// minus 20 for brand keywords and minus 10 for local keywords.
func Difficulty(keyword string, competition float64, searchVolume int, commercialIntent float64) int {
	wordCount := len(strings.Fields(keyword))

	score := 0.0

	// Longer keywords are easier.
	switch wordCount {
	case 1:
		score += 40
	case 2:
		score += 25
	case 3:
		score += 15
	default:
		score += 10
	}

	score += competition * 30

	// Higher volume attracts more bidders.
	switch {
	case searchVolume > 10000:
		score += 20
	case searchVolume > 5000:
		score += 15
	case searchVolume > 1000:
		score += 10
	default:
		score += 5
	}

	score += commercialIntent * 15

	if IsBrandKeyword(keyword) {
		score -= 20
	}
	if IsLocalKeyword(keyword) {
		score -= 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(score)
}

// DifficultyCategory buckets a difficulty score: >=70 high, >=40 medium,
// otherwise low.
func DifficultyCategory(score int) string {
	switch {
	case score >= 70:
		return types.DifficultyHigh
	case score >= 40:
		return types.DifficultyMedium
	default:
		return types.DifficultyLow
	}
}

// ScoreDifficulty fills a record's difficulty score and category from its
// stored metrics.
func ScoreDifficulty(r *types.KeywordRecord) {
	r.DifficultyScore = Difficulty(r.Text, r.Competition, r.SearchVolume, r.CommercialIntent)
	r.DifficultyCategory = DifficultyCategory(r.DifficultyScore)
}

// IsBrandKeyword reports whether the keyword contains a brand indicator.
// Brand keywords are easier to rank for and get a difficulty discount.
func IsBrandKeyword(keyword string) bool {
	lower := strings.ToLower(keyword)
	for _, indicator := range brandIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// IsLocalKeyword reports whether the keyword is location-specific.
func IsLocalKeyword(keyword string) bool {
	lower := strings.ToLower(keyword)
	for _, indicator := range localIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
