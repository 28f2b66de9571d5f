package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/estimate"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

const (
	defaultAutocompleteURL = "http://suggestqueries.google.com/complete/search"

	// maxAutocompleteSeeds caps how many seeds one run queries.
	maxAutocompleteSeeds = 15
)

// SuggestionCache stores raw suggestion lists per seed keyword. Implemented
// by the Redis cache in cache.go; nil disables caching.
type SuggestionCache interface {
	Get(ctx context.Context, seed string) ([]string, bool)
	Set(ctx context.Context, seed string, suggestions []string)
}

// Autocomplete fetches keyword suggestions from the Google suggest endpoint.
// Suggestions carry no real metrics, so volume, competition, and CPC are
// estimated from the text.
type Autocomplete struct {
	client     *http.Client
	baseURL    string
	cache      SuggestionCache
	delay      time.Duration
	retryDelay time.Duration
}

// AutocompleteConfig holds adapter settings.
type AutocompleteConfig struct {
	// BaseURL overrides the suggest endpoint, mainly for tests.
	BaseURL string
	// Cache, when non-nil, short-circuits repeat seed lookups.
	Cache SuggestionCache
	// Delay overrides the rate-limit pause between seeds.
	Delay time.Duration
	// RetryDelay overrides the backoff between retry attempts.
	RetryDelay time.Duration
}

// NewAutocomplete creates the adapter with defaults applied.
func NewAutocomplete(cfg AutocompleteConfig) *Autocomplete {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAutocompleteURL
	}
	delay := cfg.Delay
	if delay == 0 {
		delay = RateLimitDelay
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = RetryDelay
	}
	return &Autocomplete{
		client:     &http.Client{Timeout: requestTimeout},
		baseURL:    cfg.BaseURL,
		cache:      cfg.Cache,
		delay:      delay,
		retryDelay: retryDelay,
	}
}

func (a *Autocomplete) Name() string { return types.SourceAutocomplete }

// Discover queries suggestions for each seed. Only suggestions longer than
// the seed itself are kept; shorter ones are truncations, not expansions.
func (a *Autocomplete) Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error) {
	var candidates []types.KeywordCandidate

	for i, seed := range limitSeeds(seeds, maxAutocompleteSeeds) {
		if i > 0 {
			if err := pause(ctx, a.delay); err != nil {
				return candidates, err
			}
		}

		suggestions, err := a.suggestionsFor(ctx, seed)
		if err != nil {
			log.Printf("Warning: autocomplete lookup failed for %q: %v", seed, err)
			continue
		}

		for _, suggestion := range suggestions {
			if len(suggestion) <= len(seed) {
				continue
			}
			candidates = append(candidates, types.KeywordCandidate{
				Text:         suggestion,
				Source:       types.SourceAutocomplete,
				SearchVolume: estimate.SearchVolume(suggestion),
				Competition:  estimate.Competition(suggestion),
				CPC:          estimate.CPC(suggestion),
			})
		}
	}

	return candidates, nil
}

func (a *Autocomplete) suggestionsFor(ctx context.Context, seed string) ([]string, error) {
	if a.cache != nil {
		if suggestions, ok := a.cache.Get(ctx, seed); ok {
			return suggestions, nil
		}
	}

	var suggestions []string
	err := withRetry(ctx, a.retryDelay, func() error {
		var fetchErr error
		suggestions, fetchErr = a.fetch(ctx, seed)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		a.cache.Set(ctx, seed, suggestions)
	}
	return suggestions, nil
}

// fetch calls the suggest endpoint with the firefox client, which returns a
// two-element JSON array: [query, [suggestions...]].
func (a *Autocomplete) fetch(ctx context.Context, seed string) ([]string, error) {
	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", seed)
	params.Set("hl", "en")
	params.Set("gl", "us")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggest response: %w", err)
	}
	if len(payload) < 2 {
		return nil, nil
	}

	var suggestions []string
	if err := json.Unmarshal(payload[1], &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestion list: %w", err)
	}
	return suggestions, nil
}
