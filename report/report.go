// Package report renders ranked keyword datasets into exportable artifacts
// (CSV for planner import, JSON for downstream services) and archives them
// to object storage.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// Uploader is the narrow object-storage interface the archiver needs.
// common.S3 satisfies it.
type Uploader interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
}

// Summary aggregates per-run statistics over a keyword dataset.
type Summary struct {
	TotalKeywords            int     `json:"total_keywords"`
	HighVolumeKeywords       int     `json:"high_volume_keywords"`
	MediumVolumeKeywords     int     `json:"medium_volume_keywords"`
	LowVolumeKeywords        int     `json:"low_volume_keywords"`
	HighDifficultyKeywords   int     `json:"high_difficulty_keywords"`
	MediumDifficultyKeywords int     `json:"medium_difficulty_keywords"`
	LowDifficultyKeywords    int     `json:"low_difficulty_keywords"`
	AverageCPC               float64 `json:"average_cpc"`
	AverageCompetition       float64 `json:"average_competition"`
	AverageCommercialIntent  float64 `json:"average_commercial_intent"`
}

// Summarize computes dataset statistics. Averages over an empty dataset are zero.
// AverageCPC only counts keywords with a positive CPC.
func Summarize(keywords []*types.KeywordRecord) Summary {
	s := Summary{TotalKeywords: len(keywords)}
	if len(keywords) == 0 {
		return s
	}

	var cpcSum float64
	var cpcCount int
	var compSum, ciSum float64
	for _, kw := range keywords {
		switch kw.VolumeCategory {
		case "high":
			s.HighVolumeKeywords++
		case "medium":
			s.MediumVolumeKeywords++
		case "low":
			s.LowVolumeKeywords++
		}
		switch kw.DifficultyCategory {
		case types.DifficultyHigh:
			s.HighDifficultyKeywords++
		case types.DifficultyMedium:
			s.MediumDifficultyKeywords++
		case types.DifficultyLow:
			s.LowDifficultyKeywords++
		}
		if kw.CPC > 0 {
			cpcSum += kw.CPC
			cpcCount++
		}
		compSum += kw.Competition
		ciSum += kw.CommercialIntent
	}

	if cpcCount > 0 {
		s.AverageCPC = cpcSum / float64(cpcCount)
	}
	s.AverageCompetition = compSum / float64(len(keywords))
	s.AverageCommercialIntent = ciSum / float64(len(keywords))
	return s
}

// csvHeader lists the export columns in the order campaign tooling expects them.
var csvHeader = []string{
	"keyword",
	"source",
	"search_volume",
	"competition",
	"cpc",
	"commercial_intent",
	"relevance_score",
	"search_intent",
	"keyword_theme",
	"intent_theme_group",
	"preliminary_match_type",
	"difficulty_score",
	"difficulty_category",
	"type",
	"search_volume_category",
}

// WriteCSV renders the dataset as CSV, one row per keyword, ranked order preserved.
func WriteCSV(w io.Writer, keywords []*types.KeywordRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, kw := range keywords {
		row := []string{
			kw.Text,
			kw.Source,
			strconv.Itoa(kw.SearchVolume),
			strconv.FormatFloat(kw.Competition, 'f', 2, 64),
			strconv.FormatFloat(kw.CPC, 'f', 2, 64),
			strconv.FormatFloat(kw.CommercialIntent, 'f', 2, 64),
			strconv.FormatFloat(kw.RelevanceScore, 'f', 4, 64),
			kw.SearchIntent,
			kw.KeywordTheme,
			kw.IntentThemeGroup,
			kw.PreliminaryMatchType,
			strconv.Itoa(kw.DifficultyScore),
			kw.DifficultyCategory,
			kw.KeywordType,
			kw.VolumeCategory,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %q: %w", kw.Text, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// document is the JSON artifact layout: the full dataset plus summary stats.
type document struct {
	GeneratedAt  string         `json:"generated_at"`
	BusinessType string         `json:"business_type,omitempty"`
	SourceCounts map[string]int `json:"source_counts,omitempty"`
	Summary      Summary        `json:"summary"`
	Keywords     []*types.KeywordRecord `json:"keywords"`
}

// WriteJSON renders the dataset and its summary as an indented JSON document.
func WriteJSON(w io.Writer, result *types.DiscoveryResult, generatedAt time.Time) error {
	doc := document{
		GeneratedAt:  generatedAt.UTC().Format(time.RFC3339),
		BusinessType: result.BusinessType,
		SourceCounts: result.SourceCounts,
		Summary:      Summarize(result.Keywords),
		Keywords:     result.Keywords,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Archiver uploads rendered report artifacts to object storage.
type Archiver struct {
	uploader Uploader
	bucket   string
	prefix   string
	now      func() time.Time
}

// ArchiverConfig holds archiver configuration.
type ArchiverConfig struct {
	Uploader Uploader
	Bucket   string
	// Prefix is the key prefix for uploaded artifacts, default "keyword-reports".
	Prefix string
}

// NewArchiver creates an archiver. Uploader and Bucket are required.
func NewArchiver(cfg ArchiverConfig) (*Archiver, error) {
	if cfg.Uploader == nil {
		return nil, fmt.Errorf("uploader is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "keyword-reports"
	}
	return &Archiver{
		uploader: cfg.Uploader,
		bucket:   cfg.Bucket,
		prefix:   prefix,
		now:      time.Now,
	}, nil
}

// Archive renders the dataset as CSV and JSON and uploads both under a
// timestamped key pair. Returns the uploaded object keys.
func (a *Archiver) Archive(ctx context.Context, result *types.DiscoveryResult) (csvKey, jsonKey string, err error) {
	generatedAt := a.now()
	stamp := generatedAt.UTC().Format("2006-01-02T15-04-05Z")

	csvKey = fmt.Sprintf("%s/%s/keywords.csv", a.prefix, stamp)
	jsonKey = fmt.Sprintf("%s/%s/keywords.json", a.prefix, stamp)

	// A duplicate invocation within the same second would overwrite the
	// earlier run's artifacts. Skip the upload instead.
	exists, err := a.uploader.Exists(ctx, a.bucket, csvKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to check for existing report: %w", err)
	}
	if exists {
		log.Printf("⚠️  Report already archived at s3://%s/%s, skipping upload", a.bucket, csvKey)
		return csvKey, jsonKey, nil
	}

	var csvBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, result.Keywords); err != nil {
		return "", "", fmt.Errorf("failed to render CSV report: %w", err)
	}

	var jsonBuf bytes.Buffer
	if err := WriteJSON(&jsonBuf, result, generatedAt); err != nil {
		return "", "", fmt.Errorf("failed to render JSON report: %w", err)
	}

	if err := a.uploader.Put(ctx, a.bucket, csvKey, &csvBuf, "text/csv"); err != nil {
		return "", "", fmt.Errorf("failed to upload CSV report: %w", err)
	}

	if err := a.uploader.Put(ctx, a.bucket, jsonKey, &jsonBuf, "application/json"); err != nil {
		return "", "", fmt.Errorf("failed to upload JSON report: %w", err)
	}

	log.Printf("✅ Archived keyword report: s3://%s/%s (%d keywords)", a.bucket, csvKey, len(result.Keywords))
	return csvKey, jsonKey, nil
}
