package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Candidate source identifiers. Adapters stamp every candidate they emit
// with one of these so the aggregator can report per-source counts.
const (
	SourceLLMExpansion  = "llm_expansion"
	SourceAutocomplete  = "autocomplete"
	SourceScrapedTool   = "scraped_tool"
	SourcePlannerImport = "planner_import"
	SourceWordstream    = "wordstream"
	SourceUnknown       = "unknown"
)

// Search intent classifications assigned by the intent classifier.
const (
	IntentInformational = "informational"
	IntentNavigational  = "navigational"
	IntentCommercial    = "commercial"
	IntentTransactional = "transactional"
	IntentLocal         = "local"
)

// Preliminary match types for ad targeting.
const (
	MatchBroad         = "broad"
	MatchPhrase        = "phrase"
	MatchExact         = "exact"
	MatchModifiedBroad = "modified_broad"
)

// Difficulty categories derived from the 0-100 difficulty score.
const (
	DifficultyLow    = "low"
	DifficultyMedium = "medium"
	DifficultyHigh   = "high"
)

// KeywordCandidate is a raw keyword suggestion as emitted by a source adapter.
// Only Text and Source are required; the numeric fields are filled by adapters
// that have (or can estimate) real metrics. Candidates are immutable once
// emitted; ownership passes to the aggregator.
type KeywordCandidate struct {
	Text             string  `json:"keyword"`
	Source           string  `json:"source"`
	SearchVolume     int     `json:"search_volume,omitempty"`
	Competition      float64 `json:"competition,omitempty"`
	CPC              float64 `json:"cpc,omitempty"`
	CommercialIntent float64 `json:"commercial_intent,omitempty"`

	// Source-specific tags, all optional.
	MatchType      string  `json:"match_type,omitempty"`
	Intent         string  `json:"intent,omitempty"`
	Category       string  `json:"category,omitempty"`
	CompetitorType string  `json:"competitor_type,omitempty"`
	LocationType   string  `json:"location_type,omitempty"`
	LongtailType   string  `json:"longtail_type,omitempty"`
	TopOfPageLow   float64 `json:"top_of_page_low,omitempty"`
	TopOfPageHigh  float64 `json:"top_of_page_high,omitempty"`
}

// KeywordRecord is the pipeline-internal, canonical form of a candidate.
// Each stage enriches it in place: classification adds intent/theme fields,
// the match-type assigner sets PreliminaryMatchType, scoring sets the
// difficulty and relevance fields, and the analyzer attaches display metadata.
type KeywordRecord struct {
	// ID is a stable identifier derived from the normalized keyword text,
	// so the same keyword keeps the same id across runs and sources.
	ID               string  `json:"id"`
	Text             string  `json:"keyword"`
	Source           string  `json:"source"`
	SearchVolume     int     `json:"search_volume"`
	Competition      float64 `json:"competition"`
	CPC              float64 `json:"cpc"`
	CommercialIntent float64 `json:"commercial_intent"`
	RelevanceScore   float64 `json:"relevance_score"`

	// Carried over source-specific tags.
	MatchType      string `json:"match_type,omitempty"`
	Intent         string `json:"intent,omitempty"`
	CompetitorType string `json:"competitor_type,omitempty"`
	LocationType   string `json:"location_type,omitempty"`
	LongtailType   string `json:"longtail_type,omitempty"`

	// Assigned by the classification and scoring stages.
	SearchIntent         string `json:"search_intent,omitempty"`
	KeywordTheme         string `json:"keyword_theme,omitempty"`
	IntentThemeGroup     string `json:"intent_theme_group,omitempty"`
	PreliminaryMatchType string `json:"preliminary_match_type,omitempty"`
	DifficultyScore      int    `json:"difficulty_score"`
	DifficultyCategory   string `json:"difficulty_category,omitempty"`

	// Display metadata attached by the final analyzer.
	Length         int    `json:"length,omitempty"`
	WordCount      int    `json:"word_count,omitempty"`
	KeywordType    string `json:"type,omitempty"`
	VolumeCategory string `json:"search_volume_category,omitempty"`
}

// NewRecord converts a candidate into a pipeline record. Missing numeric
// fields keep their documented defaults (zero values).
func NewRecord(c KeywordCandidate) *KeywordRecord {
	return &KeywordRecord{
		ID:               GenerateID(c.Text),
		Text:             c.Text,
		Source:           c.Source,
		SearchVolume:     c.SearchVolume,
		Competition:      c.Competition,
		CPC:              c.CPC,
		CommercialIntent: c.CommercialIntent,
		MatchType:        c.MatchType,
		Intent:           c.Intent,
		CompetitorType:   c.CompetitorType,
		LocationType:     c.LocationType,
		LongtailType:     c.LongtailType,
	}
}

// Normalize returns the comparison key for a keyword: lower-cased and
// whitespace-trimmed. All dedup and negative-keyword checks operate on this.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Normalized returns the record's comparison key.
func (r *KeywordRecord) Normalized() string {
	return Normalize(r.Text)
}

// DiscoveryResult is the top-level wrapper for a pipeline run's output.
type DiscoveryResult struct {
	BusinessType string           `json:"business_type,omitempty"`
	KeywordCount int              `json:"keyword_count"`
	SourceCounts map[string]int   `json:"source_counts,omitempty"`
	Keywords     []*KeywordRecord `json:"keywords"`
}

// GenerateID creates a stable short identifier from a normalized keyword.
func GenerateID(text string) string {
	hash := sha256.Sum256([]byte(Normalize(text)))
	return hex.EncodeToString(hash[:])[:16]
}
