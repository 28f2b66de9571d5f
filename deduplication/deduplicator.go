// Package deduplication removes exact and near-duplicate keywords from a
// candidate stream. The accepted set lives only for one pipeline run; there
// is no persistence across runs.
package deduplication

import (
	"strings"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

const (
	// SimilarityThreshold is the token-overlap ratio above which two
	// multi-word keywords are considered variations of each other.
	SimilarityThreshold float64 = 0.8

	// MinTokenCount is the minimum number of distinct tokens both keywords
	// need before the overlap rule applies.
	MinTokenCount = 2
)

// Rules that can flag a candidate as a duplicate.
const (
	RuleExact   = "exact"
	RulePlural  = "plural"
	RuleOverlap = "overlap"
)

// Result describes the outcome of checking one candidate.
type Result struct {
	IsDuplicate bool    `json:"is_duplicate"`
	MatchedText string  `json:"matched_text,omitempty"`
	Rule        string  `json:"rule,omitempty"`
	Similarity  float64 `json:"similarity,omitempty"`
}

// Config holds deduplicator settings.
type Config struct {
	SimilarityThreshold float64 // Default: 0.8 (80% token overlap)
	MinTokenCount       int     // Default: 2
}

// Deduplicator tracks accepted keywords within a single pipeline run and
// tests new candidates against them. The near-duplicate pass is O(n^2) in
// the accepted-set size, which is fine for the expected input sizes
// (hundreds of candidates).
type Deduplicator struct {
	similarityThreshold float64
	minTokenCount       int

	seen     map[string]struct{}
	accepted []string
}

// NewDeduplicator creates a deduplicator with an empty accepted set.
func NewDeduplicator(config Config) *Deduplicator {
	cfg := applyConfigDefaults(config)
	return &Deduplicator{
		similarityThreshold: cfg.SimilarityThreshold,
		minTokenCount:       cfg.MinTokenCount,
		seen:                make(map[string]struct{}),
	}
}

// Check tests a keyword against the accepted set without adding it.
// Rules run in order: exact match, plural/singular collapse, token overlap.
func (d *Deduplicator) Check(text string) Result {
	normalized := types.Normalize(text)

	if _, ok := d.seen[normalized]; ok {
		return Result{IsDuplicate: true, MatchedText: normalized, Rule: RuleExact, Similarity: 1.0}
	}

	for _, existing := range d.accepted {
		if normalized == existing+"s" || existing == normalized+"s" {
			return Result{IsDuplicate: true, MatchedText: existing, Rule: RulePlural}
		}
		if sim, similar := d.similarity(normalized, existing); similar {
			return Result{IsDuplicate: true, MatchedText: existing, Rule: RuleOverlap, Similarity: sim}
		}
	}

	return Result{}
}

// Add records a keyword as accepted.
func (d *Deduplicator) Add(text string) {
	normalized := types.Normalize(text)
	d.seen[normalized] = struct{}{}
	d.accepted = append(d.accepted, normalized)
}

// Process checks a keyword and, when it is not a duplicate, adds it to the
// accepted set.
func (d *Deduplicator) Process(text string) Result {
	result := d.Check(text)
	if !result.IsDuplicate {
		d.Add(text)
	}
	return result
}

// Count returns the number of accepted keywords.
func (d *Deduplicator) Count() int {
	return len(d.accepted)
}

// Dedupe filters a record sequence, preserving first-seen order. Records
// flagged by any rule are dropped.
func Dedupe(records []*types.KeywordRecord, config Config) []*types.KeywordRecord {
	d := NewDeduplicator(config)
	out := make([]*types.KeywordRecord, 0, len(records))

	for _, r := range records {
		if result := d.Process(r.Text); result.IsDuplicate {
			continue
		}
		out = append(out, r)
	}
	return out
}

// similarity computes the token-overlap ratio between two normalized
// keywords. Both need at least minTokenCount distinct tokens; the ratio is
// |intersection| / min(|tokens_a|, |tokens_b|).
func (d *Deduplicator) similarity(a, b string) (float64, bool) {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	if len(tokensA) < d.minTokenCount || len(tokensB) < d.minTokenCount {
		return 0, false
	}

	overlap := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			overlap++
		}
	}

	minLen := len(tokensA)
	if len(tokensB) < minLen {
		minLen = len(tokensB)
	}

	sim := float64(overlap) / float64(minLen)
	return sim, sim >= d.similarityThreshold
}

func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(s) {
		tokens[field] = struct{}{}
	}
	return tokens
}

func applyConfigDefaults(config Config) Config {
	if config.SimilarityThreshold == 0 {
		config.SimilarityThreshold = SimilarityThreshold
	}
	if config.MinTokenCount == 0 {
		config.MinTokenCount = MinTokenCount
	}
	return config
}
