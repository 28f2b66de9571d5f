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
	defaultWordstreamURL = "https://api.wordstream.com/keywords"

	maxWordstreamSeeds = 10
)

// Wordstream queries the WordStream keyword API, which returns measured
// volume, competition, and CPC per suggestion.
type Wordstream struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	delay      time.Duration
	retryDelay time.Duration
}

// WordstreamConfig holds adapter settings. APIKey is required.
type WordstreamConfig struct {
	APIKey  string
	BaseURL string
	Delay   time.Duration
	// RetryDelay overrides the backoff between retry attempts.
	RetryDelay time.Duration
}

// NewWordstream creates the adapter with defaults applied.
func NewWordstream(cfg WordstreamConfig) *Wordstream {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultWordstreamURL
	}
	delay := cfg.Delay
	if delay == 0 {
		delay = RateLimitDelay
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = RetryDelay
	}
	return &Wordstream{
		client:     &http.Client{Timeout: requestTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		delay:      delay,
		retryDelay: retryDelay,
	}
}

func (w *Wordstream) Name() string { return types.SourceWordstream }

type wordstreamResponse struct {
	Keywords []struct {
		Keyword      string  `json:"keyword"`
		SearchVolume int     `json:"search_volume"`
		Competition  float64 `json:"competition"`
		CPC          float64 `json:"cpc"`
	} `json:"keywords"`
}

// Discover queries suggestions for each seed. Without an API key the
// adapter contributes nothing.
func (w *Wordstream) Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error) {
	if w.apiKey == "" {
		return nil, nil
	}

	var candidates []types.KeywordCandidate
	for i, seed := range limitSeeds(seeds, maxWordstreamSeeds) {
		if i > 0 {
			if err := pause(ctx, w.delay); err != nil {
				return candidates, err
			}
		}

		var parsed *wordstreamResponse
		err := withRetry(ctx, w.retryDelay, func() error {
			var fetchErr error
			parsed, fetchErr = w.fetch(ctx, seed)
			return fetchErr
		})
		if err != nil {
			log.Printf("Warning: wordstream lookup failed for %q: %v", seed, err)
			continue
		}

		for _, kw := range parsed.Keywords {
			if kw.Keyword == "" {
				continue
			}
			candidates = append(candidates, types.KeywordCandidate{
				Text:         kw.Keyword,
				Source:       types.SourceWordstream,
				SearchVolume: kw.SearchVolume,
				Competition:  kw.Competition,
				CPC:          kw.CPC,
			})
		}
	}

	return candidates, nil
}

func (w *Wordstream) fetch(ctx context.Context, seed string) (*wordstreamResponse, error) {
	params := url.Values{}
	params.Set("api_key", w.apiKey)
	params.Set("keyword", seed)
	params.Set("country", "us")
	params.Set("language", "en")
	params.Set("max_results", "50")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordstream returned status %d", resp.StatusCode)
	}

	var parsed wordstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode wordstream response: %w", err)
	}
	return &parsed, nil
}
