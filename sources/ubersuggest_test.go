package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func TestUbersuggestDiscover(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("q") != "seo tools" {
			t.Errorf("q = %q", r.URL.Query().Get("q"))
		}
		w.Write([]byte(`{"suggestions":[
			{"keyword":"seo tools for agencies","search_volume":1300,"competition":0.5,"cpc":3.2},
			{"keyword":"","search_volume":10,"competition":0.1,"cpc":0.2}
		]}`))
	}))
	defer server.Close()

	ub := NewUbersuggest(UbersuggestConfig{BaseURL: server.URL, Delay: time.Millisecond})
	candidates, err := ub.Discover(context.Background(), []string{"seo tools"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1 (empty keyword dropped)", len(candidates))
	}
	c := candidates[0]
	if c.Text != "seo tools for agencies" || c.Source != types.SourceScrapedTool {
		t.Errorf("unexpected candidate: %+v", c)
	}
	if c.SearchVolume != 1300 || c.Competition != 0.5 || c.CPC != 3.2 {
		t.Errorf("metrics not carried: %+v", c)
	}
}

func TestUbersuggestRetriesTransientFailure(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"suggestions":[{"keyword":"seo tools for agencies","search_volume":1300,"competition":0.5,"cpc":3.2}]}`))
	}))
	defer server.Close()

	ub := NewUbersuggest(UbersuggestConfig{
		BaseURL:    server.URL,
		Delay:      time.Millisecond,
		RetryDelay: time.Millisecond,
	})
	candidates, err := ub.Discover(context.Background(), []string{"seo tools"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2 (one retry after the 502)", requests)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
}

func TestUbersuggestExhaustedRetriesSkipsSeed(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ub := NewUbersuggest(UbersuggestConfig{
		BaseURL:    server.URL,
		Delay:      time.Millisecond,
		RetryDelay: time.Millisecond,
	})
	candidates, err := ub.Discover(context.Background(), []string{"seo tools"})
	if err != nil {
		t.Fatalf("a failing seed should not abort the run: %v", err)
	}
	if requests != MaxRetries {
		t.Errorf("requests = %d, want %d", requests, MaxRetries)
	}
	if len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}
