package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

const (
	defaultUbersuggestURL = "https://neilpatel.com/ubersuggest/api/suggestions.php"

	maxScrapedToolSeeds = 5
)

// Ubersuggest pulls suggestions from the free Ubersuggest endpoint. It is
// the scraped-tool adapter: a best-effort source with no API contract, so
// anything unexpected in a response is simply skipped.
type Ubersuggest struct {
	client     *http.Client
	baseURL    string
	delay      time.Duration
	retryDelay time.Duration
}

// UbersuggestConfig holds adapter settings.
type UbersuggestConfig struct {
	BaseURL string
	Delay   time.Duration
	// RetryDelay overrides the backoff between retry attempts.
	RetryDelay time.Duration
}

// NewUbersuggest creates the adapter with defaults applied.
func NewUbersuggest(cfg UbersuggestConfig) *Ubersuggest {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultUbersuggestURL
	}
	delay := cfg.Delay
	if delay == 0 {
		delay = RateLimitDelay
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = RetryDelay
	}
	return &Ubersuggest{
		client:     &http.Client{Timeout: requestTimeout},
		baseURL:    cfg.BaseURL,
		delay:      delay,
		retryDelay: retryDelay,
	}
}

func (u *Ubersuggest) Name() string { return types.SourceScrapedTool }

type ubersuggestResponse struct {
	Suggestions []struct {
		Keyword      string  `json:"keyword"`
		SearchVolume int     `json:"search_volume"`
		Competition  float64 `json:"competition"`
		CPC          float64 `json:"cpc"`
	} `json:"suggestions"`
}

// Discover queries suggestions for each seed.
func (u *Ubersuggest) Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error) {
	var candidates []types.KeywordCandidate

	for i, seed := range limitSeeds(seeds, maxScrapedToolSeeds) {
		if i > 0 {
			if err := pause(ctx, u.delay); err != nil {
				return candidates, err
			}
		}

		var parsed *ubersuggestResponse
		err := withRetry(ctx, u.retryDelay, func() error {
			var fetchErr error
			parsed, fetchErr = u.fetch(ctx, seed)
			return fetchErr
		})
		if err != nil {
			log.Printf("Warning: ubersuggest scrape failed for %q: %v", seed, err)
			continue
		}

		for _, s := range parsed.Suggestions {
			if s.Keyword == "" {
				continue
			}
			candidates = append(candidates, types.KeywordCandidate{
				Text:         s.Keyword,
				Source:       types.SourceScrapedTool,
				SearchVolume: s.SearchVolume,
				Competition:  s.Competition,
				CPC:          s.CPC,
			})
		}
	}

	return candidates, nil
}

func (u *Ubersuggest) fetch(ctx context.Context, seed string) (*ubersuggestResponse, error) {
	params := url.Values{}
	params.Set("q", seed)
	params.Set("country", "us")
	params.Set("lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ubersuggest returned status %d", resp.StatusCode)
	}

	var parsed ubersuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode ubersuggest response: %w", err)
	}
	return &parsed, nil
}
