package sources

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// scriptedChat returns canned responses keyed by a substring of the prompt.
type scriptedChat struct {
	responses map[string]string
	err       error
	prompts   []string
}

func (s *scriptedChat) Generate(ctx context.Context, preamble, prompt string, maxTokens int) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	for marker, response := range s.responses {
		if strings.Contains(prompt, marker) {
			return response, nil
		}
	}
	return `{}`, nil
}

func TestLLMExpansionTagsCandidates(t *testing.T) {
	chat := &scriptedChat{responses: map[string]string{
		"match types": `Here you go:
{"broad_match": ["crm tools"], "exact_match": ["enterprise crm pricing", ""]}`,
	}}

	l := NewLLMExpansion(chat, BusinessContext{BrandName: "Acme CRM"})
	candidates, err := l.Discover(context.Background(), []string{"crm"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	// Five categories are attempted even when only one returns keywords.
	if len(chat.prompts) != 5 {
		t.Errorf("got %d prompts, want 5", len(chat.prompts))
	}

	// Keys are emitted in sorted order: broad_match before exact_match,
	// and the empty keyword is dropped.
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(candidates), candidates)
	}
	if candidates[0].Text != "crm tools" || candidates[0].MatchType != "broad_match" {
		t.Errorf("unexpected first candidate: %+v", candidates[0])
	}
	if candidates[1].Text != "enterprise crm pricing" || candidates[1].MatchType != "exact_match" {
		t.Errorf("unexpected second candidate: %+v", candidates[1])
	}
	if candidates[0].Source != types.SourceLLMExpansion || candidates[0].Category != "match_type" {
		t.Errorf("unexpected tagging: %+v", candidates[0])
	}
	// Estimates are filled from the generated text.
	if candidates[0].SearchVolume != 5000 {
		t.Errorf("SearchVolume = %d, want 5000", candidates[0].SearchVolume)
	}
}

func TestLLMExpansionContextInPrompt(t *testing.T) {
	chat := &scriptedChat{responses: map[string]string{}}
	l := NewLLMExpansion(chat, BusinessContext{
		BrandName:       "Acme CRM",
		CompetitorNames: []string{"Rival Inc"},
		TargetLocations: []string{"Austin"},
	})

	if _, err := l.Discover(context.Background(), []string{"crm"}); err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	for _, prompt := range chat.prompts {
		if !strings.Contains(prompt, "Acme CRM") {
			t.Fatal("expected brand name in every prompt")
		}
	}
}

func TestLLMExpansionChatFailureIsNotFatal(t *testing.T) {
	chat := &scriptedChat{err: errors.New("api quota exceeded")}
	l := NewLLMExpansion(chat, BusinessContext{})

	candidates, err := l.Discover(context.Background(), []string{"crm"})
	if err != nil {
		t.Fatalf("Discover should swallow per-category failures: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}

func TestParseExpansionResponse(t *testing.T) {
	// JSON wrapped in prose and fences still parses.
	response := "Sure! Here's the JSON:\n```json\n{\"informational\": [\"what is crm\"]}\n```\nLet me know if you need more."
	groups, err := parseExpansionResponse(response)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(groups["informational"]) != 1 || groups["informational"][0] != "what is crm" {
		t.Errorf("unexpected groups: %v", groups)
	}
}

func TestParseExpansionResponseNoJSON(t *testing.T) {
	if _, err := parseExpansionResponse("I cannot help with that."); err == nil {
		t.Fatal("expected error for response without JSON")
	}
}

func TestParseExpansionResponseMalformedJSON(t *testing.T) {
	if _, err := parseExpansionResponse(`{"broad_match": [unquoted]}`); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestBusinessContextString(t *testing.T) {
	bc := BusinessContext{
		BrandName:       "Acme CRM",
		BrandServices:   []string{"sales automation", "support desk"},
		TargetLocations: []string{"Austin", "Dallas"},
	}
	s := bc.String()
	if !strings.Contains(s, "Brand Name: Acme CRM") {
		t.Errorf("missing brand name: %q", s)
	}
	if !strings.Contains(s, "sales automation, support desk") {
		t.Errorf("missing services: %q", s)
	}
	if strings.Contains(s, "Main Competitors") {
		t.Errorf("empty competitor list should be omitted: %q", s)
	}

	if got := (BusinessContext{}).String(); got != "" {
		t.Errorf("empty context should render empty, got %q", got)
	}
}
