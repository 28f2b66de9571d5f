package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sachin9536/SEM-Campaign-Automation/classify"
	"github.com/sachin9536/SEM-Campaign-Automation/deduplication"
	"github.com/sachin9536/SEM-Campaign-Automation/estimate"
	"github.com/sachin9536/SEM-Campaign-Automation/pipeline"
	"github.com/sachin9536/SEM-Campaign-Automation/scoring"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// RegisterKeywordRoutes registers keyword processing endpoints.
func RegisterKeywordRoutes(r *gin.Engine) {
	g := r.Group("/api/keywords")
	g.POST("/process", handleProcessKeywords)
	g.POST("/score", handleScoreKeyword)
	g.POST("/deduplicate", handleDeduplicateKeywords)
}

// ProcessKeywordsRequest carries a combined candidate batch plus run settings.
type ProcessKeywordsRequest struct {
	Candidates       []types.KeywordCandidate `json:"candidates" binding:"required"`
	BusinessType     string                   `json:"business_type"`
	MinSearchVolume  int                      `json:"min_search_volume"`
	NegativeKeywords []string                 `json:"negative_keywords"`
	// Rank applies the consumer-side quality gates and relevance sort.
	Rank bool `json:"rank"`
}

// handleProcessKeywords runs the full processing pipeline on a candidate batch.
func handleProcessKeywords(c *gin.Context) {
	var req ProcessKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pl := pipeline.New(pipeline.Config{
		MinSearchVolume:  req.MinSearchVolume,
		BusinessType:     req.BusinessType,
		NegativeKeywords: req.NegativeKeywords,
	})
	records := pl.Run(req.Candidates)

	if req.Rank {
		records = pipeline.FilterAndRank(records, pipeline.RankConfig{})
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Source]++
	}

	c.JSON(http.StatusOK, types.DiscoveryResult{
		BusinessType: req.BusinessType,
		KeywordCount: len(records),
		SourceCounts: counts,
		Keywords:     records,
	})
}

// ScoreKeywordRequest asks for a single keyword's full metric set.
type ScoreKeywordRequest struct {
	Keyword      string `json:"keyword" binding:"required"`
	BusinessType string `json:"business_type"`
}

// handleScoreKeyword estimates, classifies, and scores one keyword without
// running the batch stages (dedup, volume filter, negative filter).
func handleScoreKeyword(c *gin.Context) {
	var req ScoreKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := types.NewRecord(types.KeywordCandidate{
		Text:   req.Keyword,
		Source: types.SourceUnknown,
	})
	text := r.Normalized()

	r.SearchVolume = estimate.SearchVolume(text)
	r.Competition = estimate.Competition(text)
	r.CPC = estimate.CPC(text)
	r.CommercialIntent = estimate.CommercialIntent(text)

	r.SearchIntent = classify.SearchIntent(text)
	r.KeywordTheme = classify.KeywordTheme(text, classify.ThemeRules(req.BusinessType))
	r.IntentThemeGroup = r.SearchIntent + "_" + r.KeywordTheme
	classify.AssignMatchType(r)

	scoring.ScoreDifficulty(r)
	scoring.ScoreRelevance(r)

	r.Length = len(text)
	r.WordCount = len(strings.Fields(text))
	r.KeywordType = classify.KeywordType(text)
	r.VolumeCategory = estimate.VolumeCategory(text)

	c.JSON(http.StatusOK, r)
}

// DeduplicateKeywordsRequest carries raw keyword strings to collapse.
type DeduplicateKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required"`
}

// DeduplicateKeywordsResponse reports the kept keywords and the per-keyword
// rule outcomes in input order.
type DeduplicateKeywordsResponse struct {
	Kept    []string               `json:"kept"`
	Results []deduplication.Result `json:"results"`
}

// handleDeduplicateKeywords collapses a keyword list using the pipeline's
// dedup rules: exact match, plural/singular, token overlap.
func handleDeduplicateKeywords(c *gin.Context) {
	var req DeduplicateKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dedup := deduplication.NewDeduplicator(deduplication.Config{})
	resp := DeduplicateKeywordsResponse{
		Kept:    make([]string, 0, len(req.Keywords)),
		Results: make([]deduplication.Result, 0, len(req.Keywords)),
	}
	for _, kw := range req.Keywords {
		result := dedup.Process(kw)
		resp.Results = append(resp.Results, result)
		if !result.IsDuplicate {
			resp.Kept = append(resp.Kept, kw)
		}
	}

	c.JSON(http.StatusOK, resp)
}
