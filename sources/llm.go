package sources

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"github.com/sachin9536/SEM-Campaign-Automation/estimate"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

const expansionPreamble = "You are an expert SEM specialist who generates high-quality keyword variations for Google Ads campaigns."

// ChatClient abstracts the LLM call so tests can run without Cohere.
type ChatClient interface {
	Generate(ctx context.Context, preamble, prompt string, maxTokens int) (string, error)
}

// CohereChat implements ChatClient on the Cohere chat API.
type CohereChat struct {
	client *cohereclient.Client
	model  string
}

// NewCohereChat builds the Cohere client. The HTTP client forces HTTP/1.1;
// the Cohere edge intermittently resets HTTP/2 streams on long generations.
func NewCohereChat(apiKey, model string) *CohereChat {
	if model == "" {
		model = "command-r-08-2024"
	}
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereChat{client: client, model: model}
}

// Generate sends one chat turn and returns the raw response text.
func (c *CohereChat) Generate(ctx context.Context, preamble, prompt string, maxTokens int) (string, error) {
	temperature := 0.7
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:     prompt,
		Model:       &c.model,
		Preamble:    &preamble,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("cohere chat returned empty response")
	}
	return resp.Text, nil
}

// Expansion context beyond the seeds themselves.
type BusinessContext struct {
	BrandName        string
	BrandDescription string
	BrandServices    []string
	CompetitorNames  []string
	CompetitorOffers []string
	TargetLocations  []string
}

// String renders the context block included in every expansion prompt.
func (b BusinessContext) String() string {
	var parts []string
	if b.BrandName != "" {
		parts = append(parts, "Brand Name: "+b.BrandName)
	}
	if b.BrandDescription != "" {
		parts = append(parts, "Brand Description: "+b.BrandDescription)
	}
	if len(b.BrandServices) > 0 {
		parts = append(parts, "Brand Services: "+strings.Join(b.BrandServices, ", "))
	}
	if len(b.CompetitorNames) > 0 {
		parts = append(parts, "Main Competitors: "+strings.Join(b.CompetitorNames, ", "))
	}
	if len(b.CompetitorOffers) > 0 {
		parts = append(parts, "Competitor Services: "+strings.Join(b.CompetitorOffers, ", "))
	}
	if len(b.TargetLocations) > 0 {
		parts = append(parts, "Target Locations: "+strings.Join(b.TargetLocations, ", "))
	}
	return strings.Join(parts, "\n")
}

// LLMExpansion generates keyword variations across five categories:
// match-type, intent-based, competitor-based, location-based, and long-tail.
type LLMExpansion struct {
	chat    ChatClient
	context BusinessContext
}

// NewLLMExpansion creates the adapter around any ChatClient.
func NewLLMExpansion(chat ChatClient, bizContext BusinessContext) *LLMExpansion {
	return &LLMExpansion{chat: chat, context: bizContext}
}

func (l *LLMExpansion) Name() string { return types.SourceLLMExpansion }

// expansionKind describes one generation category: the prompt to send and
// the candidate tag the response keys map onto.
type expansionKind struct {
	category  string
	maxTokens int
	prompt    func(seeds []string, bizContext string) string
	tag       func(c *types.KeywordCandidate, key string)
}

var expansionKinds = []expansionKind{
	{
		category:  "match_type",
		maxTokens: 2000,
		prompt: func(seeds []string, bizContext string) string {
			return fmt.Sprintf(`Based on these seed keywords and business context, generate keyword variations for different match types:

Seed Keywords: %s
Business Context: %s

Generate keywords in this JSON format:
{
    "broad_match": ["5-8 broad match keywords"],
    "phrase_match": ["5-8 phrase match keywords"],
    "exact_match": ["5-8 exact match keywords"],
    "modified_broad": ["5-8 modified broad match keywords"]
}

Return only the JSON response.`, strings.Join(seeds, ", "), bizContext)
		},
		tag: func(c *types.KeywordCandidate, key string) { c.MatchType = key },
	},
	{
		category:  "intent_based",
		maxTokens: 2000,
		prompt: func(seeds []string, bizContext string) string {
			return fmt.Sprintf(`Based on these seed keywords and business context, generate keywords for different search intents:

Seed Keywords: %s
Business Context: %s

Generate keywords in this JSON format:
{
    "informational": ["5-8 informational keywords (how to, what is, etc.)"],
    "navigational": ["5-8 navigational keywords (brand names, specific websites)"],
    "commercial": ["5-8 commercial keywords (best, review, compare, etc.)"],
    "transactional": ["5-8 transactional keywords (buy, purchase, order, etc.)"]
}

Return only the JSON response.`, strings.Join(seeds, ", "), bizContext)
		},
		tag: func(c *types.KeywordCandidate, key string) { c.Intent = key },
	},
	{
		category:  "competitor_based",
		maxTokens: 1500,
		prompt: func(seeds []string, bizContext string) string {
			return fmt.Sprintf(`Based on these seed keywords, business context, and competitor information, generate competitor-based keywords:

Seed Keywords: %s
Business Context: %s

Generate keywords in this JSON format:
{
    "competitor_brand_keywords": ["5-8 keywords targeting competitor brand names"],
    "competitor_service_keywords": ["5-8 keywords targeting competitor services"],
    "alternative_keywords": ["5-8 keywords for alternatives to competitors"],
    "comparison_keywords": ["5-8 keywords for comparing with competitors"],
    "better_than_keywords": ["5-8 keywords positioning as better than competitors"]
}

Return only the JSON response.`, strings.Join(limitSeeds(seeds, 10), ", "), bizContext)
		},
		tag: func(c *types.KeywordCandidate, key string) { c.CompetitorType = key },
	},
	{
		category:  "location_based",
		maxTokens: 1500,
		prompt: func(seeds []string, bizContext string) string {
			return fmt.Sprintf(`Based on these seed keywords, business context, and target locations, generate location-based keywords:

Seed Keywords: %s
Business Context: %s

Generate keywords in this JSON format:
{
    "location_specific_keywords": ["5-8 keywords with specific location names"],
    "near_me_keywords": ["5-8 keywords with 'near me' variations"],
    "local_service_keywords": ["5-8 keywords emphasizing local service"],
    "city_based_keywords": ["5-8 keywords with city/location modifiers"],
    "regional_keywords": ["5-8 keywords for broader regional targeting"]
}

Return only the JSON response.`, strings.Join(limitSeeds(seeds, 10), ", "), bizContext)
		},
		tag: func(c *types.KeywordCandidate, key string) { c.LocationType = key },
	},
	{
		category:  "longtail",
		maxTokens: 1500,
		prompt: func(seeds []string, bizContext string) string {
			return fmt.Sprintf(`Based on these seed keywords and business context, generate long-tail keyword variations:

Seed Keywords: %s
Business Context: %s

Generate keywords in this JSON format:
{
    "question_keywords": ["5-8 question-based long-tail keywords"],
    "problem_solution_keywords": ["5-8 problem-solution focused keywords"],
    "specific_service_keywords": ["5-8 specific service or product keywords"],
    "benefit_focused_keywords": ["5-8 benefit-focused long-tail keywords"],
    "niche_keywords": ["5-8 niche or specialized keywords"]
}

Return only the JSON response.`, strings.Join(limitSeeds(seeds, 10), ", "), bizContext)
		},
		tag: func(c *types.KeywordCandidate, key string) { c.LongtailType = key },
	},
}

// Discover runs all five generation categories. A failing category logs a
// warning and contributes nothing; the others still run.
func (l *LLMExpansion) Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error) {
	bizContext := l.context.String()

	var candidates []types.KeywordCandidate
	for _, kind := range expansionKinds {
		generated, err := l.generate(ctx, kind, seeds, bizContext)
		if err != nil {
			log.Printf("Warning: %s keyword generation failed: %v", kind.category, err)
			continue
		}
		candidates = append(candidates, generated...)
	}

	log.Printf("LLM expansion completed: %d keywords generated", len(candidates))
	return candidates, nil
}

func (l *LLMExpansion) generate(ctx context.Context, kind expansionKind, seeds []string, bizContext string) ([]types.KeywordCandidate, error) {
	response, err := l.chat.Generate(ctx, expansionPreamble, kind.prompt(seeds, bizContext), kind.maxTokens)
	if err != nil {
		return nil, err
	}

	groups, err := parseExpansionResponse(response)
	if err != nil {
		return nil, err
	}

	// Map order is not stable; sort keys so runs are reproducible.
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var candidates []types.KeywordCandidate
	for _, key := range keys {
		for _, keyword := range groups[key] {
			if strings.TrimSpace(keyword) == "" {
				continue
			}
			c := types.KeywordCandidate{
				Text:             keyword,
				Source:           types.SourceLLMExpansion,
				Category:         kind.category,
				SearchVolume:     estimate.SearchVolume(keyword),
				Competition:      estimate.Competition(keyword),
				CPC:              estimate.CPC(keyword),
				CommercialIntent: estimate.CommercialIntent(keyword),
			}
			kind.tag(&c, key)
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseExpansionResponse extracts the JSON block from an LLM reply and
// decodes it as {category: [keywords]}. Models often wrap the JSON in prose
// or code fences, so the match is the first brace-to-brace span.
func parseExpansionResponse(response string) (map[string][]string, error) {
	block := jsonBlockRe.FindString(response)
	if block == "" {
		return nil, fmt.Errorf("no JSON found in LLM response")
	}

	var groups map[string][]string
	if err := json.Unmarshal([]byte(block), &groups); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response as JSON: %w", err)
	}
	return groups, nil
}
