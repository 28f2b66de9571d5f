// Package estimate provides deterministic proxy metrics for keywords when no
// real market data is available. The heuristics are intentionally simple and
// monotonic in word count; downstream scoring assumes these exact thresholds.
package estimate

import "strings"

const baseVolume = 1000

// commercialIndicators is the fixed vocabulary used to assess how likely a
// searcher is to transact. Each hit contributes 0.15, capped at 1.0.
var commercialIndicators = []string{
	"buy", "purchase", "order", "shop", "store", "price", "cost",
	"cheap", "affordable", "discount", "deal", "offer", "sale",
	"near me", "local", "service", "professional", "expert",
	"best", "top", "reviews", "compare", "vs", "versus",
}

var highVolumeIndicators = []string{
	"best", "top", "cheap", "free", "near me", "local",
	"service", "professional", "expert", "reviews", "compare",
}

var lowVolumeIndicators = []string{
	"how to", "what is", "why", "when", "where", "which",
	"specific", "custom", "specialized", "niche", "advanced",
}

// SearchVolume estimates monthly search volume from word count.
// Broad single-word keywords get the highest volume, long-tail the lowest.
func SearchVolume(keyword string) int {
	switch wordCount(keyword) {
	case 1:
		return baseVolume * 10
	case 2:
		return baseVolume * 5
	default:
		return baseVolume
	}
}

// Competition estimates competition level in [0,1] from word count.
func Competition(keyword string) float64 {
	switch wordCount(keyword) {
	case 1:
		return 0.8
	case 2:
		return 0.6
	default:
		return 0.3
	}
}

// CPC estimates cost per click from word count. Base CPC is 2.0.
func CPC(keyword string) float64 {
	const baseCPC = 2.0
	switch wordCount(keyword) {
	case 1:
		return baseCPC * 1.5
	case 2:
		return baseCPC
	default:
		return baseCPC * 0.7
	}
}

// CommercialIntent scores transactional likelihood: 0.15 per matched
// indicator substring, capped at 1.0.
func CommercialIntent(keyword string) float64 {
	lower := strings.ToLower(keyword)
	score := 0.0
	for _, indicator := range commercialIndicators {
		if strings.Contains(lower, indicator) {
			score += 0.15
		}
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

// VolumeCategory buckets a keyword's expected volume as high/medium/low for
// display. Indicator substrings trump the word-count fallback.
func VolumeCategory(keyword string) string {
	lower := strings.ToLower(keyword)

	for _, indicator := range highVolumeIndicators {
		if strings.Contains(lower, indicator) {
			return "high"
		}
	}
	for _, indicator := range lowVolumeIndicators {
		if strings.Contains(lower, indicator) {
			return "low"
		}
	}

	switch wordCount(keyword) {
	case 1:
		return "high"
	case 2:
		return "medium"
	default:
		return "low"
	}
}

func wordCount(keyword string) int {
	return len(strings.Fields(keyword))
}
