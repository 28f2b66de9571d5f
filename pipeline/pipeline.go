// Package pipeline turns raw keyword candidates from all sources into a
// cleaned, classified, and scored dataset. Stages run in a fixed sequence,
// each fully consuming its input before the next begins: combine, dedupe,
// volume filter, intent/theme classification, match-type assignment,
// difficulty scoring, final analysis.
package pipeline

import (
	"log"
	"sort"
	"strings"

	"github.com/sachin9536/SEM-Campaign-Automation/classify"
	"github.com/sachin9536/SEM-Campaign-Automation/deduplication"
	"github.com/sachin9536/SEM-Campaign-Automation/estimate"
	"github.com/sachin9536/SEM-Campaign-Automation/scoring"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// DefaultMinSearchVolume is the volume-filter threshold used when the
// caller does not set one.
const DefaultMinSearchVolume = 500

// Config carries the run settings. It is passed explicitly so the core
// stays testable without any ambient configuration.
type Config struct {
	// MinSearchVolume is the volume-filter threshold. Default: 500.
	MinSearchVolume int
	// BusinessType selects the theme table (general, ecommerce, saas, service).
	BusinessType string
	// NegativeKeywords removes any record containing one of these
	// substrings from the final output.
	NegativeKeywords []string
}

// Pipeline processes combined candidate batches. One instance is safe to
// reuse across runs; each run gets its own deduplication set.
type Pipeline struct {
	cfg Config
}

// New creates a pipeline with defaults applied.
func New(cfg Config) *Pipeline {
	if cfg.MinSearchVolume == 0 {
		cfg.MinSearchVolume = DefaultMinSearchVolume
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full processing sequence on a combined candidate batch
// and returns the enriched records. An empty input yields an empty output,
// never an error.
func (p *Pipeline) Run(candidates []types.KeywordCandidate) []*types.KeywordRecord {
	log.Println("Starting keyword processing pipeline...")

	records, sourceCounts := Aggregate(candidates)
	log.Printf("Combined %d keywords from all sources (distribution: %v)", len(records), sourceCounts)

	records = deduplication.Dedupe(records, deduplication.Config{})
	log.Printf("After deduplication: %d keywords", len(records))

	records = p.FilterByVolume(records)
	log.Printf("After volume filtering: %d keywords", len(records))

	p.classifyIntentAndTheme(records)
	log.Printf("Grouped %d keywords by intent and theme", len(records))

	for _, r := range records {
		classify.AssignMatchType(r)
	}
	log.Println("Assigned preliminary match types")

	for _, r := range records {
		scoring.ScoreDifficulty(r)
	}
	log.Println("Calculated keyword difficulty scores")

	records = p.Analyze(records)
	log.Printf("Final processed keywords: %d", len(records))

	return records
}

// Aggregate combines candidates from all sources into pipeline records,
// dropping any candidate without text and tallying a count per source.
// Order is preserved; defaults for missing numeric fields are the zero
// values the record carries.
func Aggregate(candidates []types.KeywordCandidate) ([]*types.KeywordRecord, map[string]int) {
	records := make([]*types.KeywordRecord, 0, len(candidates))
	sourceCounts := make(map[string]int)

	for _, c := range candidates {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		source := c.Source
		if source == "" {
			source = types.SourceUnknown
			c.Source = source
		}
		sourceCounts[source]++
		records = append(records, types.NewRecord(c))
	}

	return records, sourceCounts
}

// FilterByVolume keeps records whose search volume meets the threshold.
// Records below it get one chance: the volume is re-estimated from the
// keyword text and written back if the estimate qualifies. Every surviving
// record therefore satisfies SearchVolume >= MinSearchVolume.
func (p *Pipeline) FilterByVolume(records []*types.KeywordRecord) []*types.KeywordRecord {
	filtered := make([]*types.KeywordRecord, 0, len(records))

	for _, r := range records {
		if r.SearchVolume >= p.cfg.MinSearchVolume {
			filtered = append(filtered, r)
			continue
		}
		if estimated := estimate.SearchVolume(r.Text); estimated >= p.cfg.MinSearchVolume {
			r.SearchVolume = estimated
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// classifyIntentAndTheme assigns search intent, keyword theme, and the
// combined intent_theme_group to every record.
func (p *Pipeline) classifyIntentAndTheme(records []*types.KeywordRecord) {
	themeRules := classify.ThemeRules(p.cfg.BusinessType)

	for _, r := range records {
		r.SearchIntent = classify.SearchIntent(r.Text)
		r.KeywordTheme = classify.KeywordTheme(r.Text, themeRules)
		r.IntentThemeGroup = r.SearchIntent + "_" + r.KeywordTheme
	}
}

// Analyze drops negative-keyword matches, recomputes commercial intent from
// the keyword text, scores relevance, and attaches display metadata. The
// output keeps the input order; ranking is the caller's concern.
func (p *Pipeline) Analyze(records []*types.KeywordRecord) []*types.KeywordRecord {
	analyzed := make([]*types.KeywordRecord, 0, len(records))

	for _, r := range records {
		if p.matchesNegativeKeyword(r.Normalized()) {
			continue
		}

		r.CommercialIntent = estimate.CommercialIntent(r.Text)
		scoring.ScoreRelevance(r)

		r.Length = len(r.Text)
		r.WordCount = len(strings.Fields(r.Text))
		r.KeywordType = classify.KeywordType(r.Text)
		r.VolumeCategory = estimate.VolumeCategory(r.Text)

		analyzed = append(analyzed, r)
	}

	return analyzed
}

func (p *Pipeline) matchesNegativeKeyword(normalized string) bool {
	for _, negative := range p.cfg.NegativeKeywords {
		if negative == "" {
			continue
		}
		if strings.Contains(normalized, types.Normalize(negative)) {
			return true
		}
	}
	return false
}

// RankConfig controls the optional post-pipeline filter/ranking step that
// campaign-building consumers apply before grouping keywords.
type RankConfig struct {
	MinSearchVolume int     // Default: 1000
	MaxCompetition  float64 // Default: 0.8
	MinRelevance    float64 // Default: 0.4
}

// FilterAndRank applies the consumer-side quality gates and sorts the
// survivors by relevance, best first. The sort is stable so equal-relevance
// keywords keep their pipeline order.
func FilterAndRank(records []*types.KeywordRecord, cfg RankConfig) []*types.KeywordRecord {
	if cfg.MinSearchVolume == 0 {
		cfg.MinSearchVolume = 1000
	}
	if cfg.MaxCompetition == 0 {
		cfg.MaxCompetition = 0.8
	}
	if cfg.MinRelevance == 0 {
		cfg.MinRelevance = 0.4
	}

	ranked := make([]*types.KeywordRecord, 0, len(records))
	for _, r := range records {
		if r.SearchVolume >= cfg.MinSearchVolume &&
			r.Competition <= cfg.MaxCompetition &&
			r.RelevanceScore >= cfg.MinRelevance {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}
