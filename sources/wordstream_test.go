package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func TestWordstreamDiscover(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("api_key = %q", r.URL.Query().Get("api_key"))
		}
		w.Write([]byte(`{"keywords":[
			{"keyword":"crm software pricing","search_volume":2400,"competition":0.7,"cpc":4.5},
			{"keyword":"","search_volume":100,"competition":0.1,"cpc":0.5}
		]}`))
	}))
	defer server.Close()

	ws := NewWordstream(WordstreamConfig{APIKey: "test-key", BaseURL: server.URL, Delay: time.Millisecond})
	candidates, err := ws.Discover(context.Background(), []string{"crm software"})
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
	if c.Text != "crm software pricing" || c.Source != types.SourceWordstream {
		t.Errorf("unexpected candidate: %+v", c)
	}
	if c.SearchVolume != 2400 || c.Competition != 0.7 || c.CPC != 4.5 {
		t.Errorf("metrics not carried: %+v", c)
	}
}

func TestWordstreamRetriesTransientFailure(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"keywords":[{"keyword":"crm software pricing","search_volume":2400,"competition":0.7,"cpc":4.5}]}`))
	}))
	defer server.Close()

	ws := NewWordstream(WordstreamConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		Delay:      time.Millisecond,
		RetryDelay: time.Millisecond,
	})
	candidates, err := ws.Discover(context.Background(), []string{"crm software"})
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

func TestWordstreamExhaustedRetriesSkipsSeed(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ws := NewWordstream(WordstreamConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		Delay:      time.Millisecond,
		RetryDelay: time.Millisecond,
	})
	candidates, err := ws.Discover(context.Background(), []string{"crm software"})
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

func TestWordstreamWithoutAPIKey(t *testing.T) {
	ws := NewWordstream(WordstreamConfig{})
	candidates, err := ws.Discover(context.Background(), []string{"crm software"})
	if err != nil || candidates != nil {
		t.Errorf("keyless adapter should contribute nothing: %v, %v", candidates, err)
	}
}
