// Package sources contains the keyword source adapters: LLM expansion,
// Google autocomplete, scraped keyword tools, WordStream, Keyword Planner
// imports, and competitor feeds. Each adapter emits KeywordCandidate records;
// the pipeline does not care where a candidate came from beyond its Source
// tag. Adapter failures never abort a run: Gather demotes them to warnings
// and treats the contribution as empty.
package sources

import (
	"context"
	"log"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

const (
	// RateLimitDelay is the fixed pause between requests to one upstream.
	RateLimitDelay = 2 * time.Second

	// MaxRetries bounds attempts per request before giving up on a seed.
	MaxRetries = 3

	// RetryDelay is the fixed backoff between attempts.
	RetryDelay = 5 * time.Second

	requestTimeout = 30 * time.Second
)

// Source produces keyword candidates for a set of seed keywords.
type Source interface {
	Name() string
	Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error)
}

// Gather collects candidates from every source in order. A failing source
// contributes nothing; the error is logged and the run continues.
func Gather(ctx context.Context, seeds []string, srcs ...Source) []types.KeywordCandidate {
	var all []types.KeywordCandidate

	for _, src := range srcs {
		candidates, err := src.Discover(ctx, seeds)
		if err != nil {
			log.Printf("Warning: source %s failed: %v (continuing without it)", src.Name(), err)
			continue
		}
		log.Printf("Retrieved %d keywords from %s", len(candidates), src.Name())
		all = append(all, candidates...)
	}

	return all
}

// withRetry runs fn up to MaxRetries times with a fixed backoff, stopping
// early when the context is done.
func withRetry(ctx context.Context, backoff time.Duration, fn func() error) error {
	var err error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}

// pause sleeps for the rate-limit delay unless the context ends first.
func pause(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// limitSeeds caps the seed list an adapter will query.
func limitSeeds(seeds []string, max int) []string {
	if len(seeds) > max {
		return seeds[:max]
	}
	return seeds
}
