package sources

import (
	"context"
	"errors"
	"testing"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

type stubSource struct {
	name       string
	candidates []types.KeywordCandidate
	err        error
	calls      int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error) {
	s.calls++
	return s.candidates, s.err
}

func TestGatherCombinesAllSources(t *testing.T) {
	a := &stubSource{name: "a", candidates: []types.KeywordCandidate{{Text: "one"}, {Text: "two"}}}
	b := &stubSource{name: "b", candidates: []types.KeywordCandidate{{Text: "three"}}}

	got := Gather(context.Background(), []string{"seed"}, a, b)
	if len(got) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got))
	}
	// Source order is preserved in the combined batch.
	if got[0].Text != "one" || got[2].Text != "three" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestGatherIsolatesFailingSource(t *testing.T) {
	failing := &stubSource{name: "broken", err: errors.New("upstream down")}
	healthy := &stubSource{name: "ok", candidates: []types.KeywordCandidate{{Text: "kept"}}}

	got := Gather(context.Background(), []string{"seed"}, failing, healthy)
	if len(got) != 1 || got[0].Text != "kept" {
		t.Fatalf("expected only the healthy source's candidate, got %v", got)
	}
	if healthy.calls != 1 {
		t.Errorf("healthy source was called %d times, want 1", healthy.calls)
	}
}

func TestLimitSeeds(t *testing.T) {
	seeds := []string{"a", "b", "c", "d"}
	if got := limitSeeds(seeds, 2); len(got) != 2 {
		t.Errorf("got %d seeds, want 2", len(got))
	}
	if got := limitSeeds(seeds, 10); len(got) != 4 {
		t.Errorf("got %d seeds, want 4", len(got))
	}
}
