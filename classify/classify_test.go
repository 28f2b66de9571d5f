package classify

import (
	"testing"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func TestSearchIntent(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"how to fix a leaky faucet", types.IntentInformational},
		{"acme company homepage", types.IntentNavigational},
		{"best crm for startups", types.IntentCommercial},
		{"buy running shoes", types.IntentTransactional},
		{"plumber near me", types.IntentLocal},
		{"enterprise resource planning", types.IntentCommercial}, // no indicator, default
	}

	for _, tt := range tests {
		if got := SearchIntent(tt.keyword); got != tt.want {
			t.Errorf("SearchIntent(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}

func TestSearchIntentTableOrderWins(t *testing.T) {
	// "where to buy shoes" matches informational ("where") and transactional
	// ("buy"); informational is scanned first.
	if got := SearchIntent("where to buy shoes"); got != types.IntentInformational {
		t.Errorf("expected informational, got %q", got)
	}

	// "best store near me" matches commercial ("best") before local ("near me").
	if got := SearchIntent("best store near me"); got != types.IntentCommercial {
		t.Errorf("expected commercial, got %q", got)
	}
}

func TestThemeRulesSelection(t *testing.T) {
	tests := []struct {
		businessType string
		keyword      string
		want         string
	}{
		{"general", "premium consulting", "quality"},
		{"ecommerce", "free shipping options", "shipping"},
		{"ecommerce retailer", "buy sneakers online", "products"}, // substring hint
		{"saas", "api integration guide", "integration"},
		{"service", "book an appointment", "booking"},
		{"", "affordable rates", "pricing"},       // empty falls back to general
		{"nonprofit", "donate today", "general"},  // unknown type, no match
		{"service", "plumbing quote", "pricing"},
	}

	for _, tt := range tests {
		rules := ThemeRules(tt.businessType)
		if got := KeywordTheme(tt.keyword, rules); got != tt.want {
			t.Errorf("KeywordTheme(%q, %q) = %q, want %q", tt.keyword, tt.businessType, got, tt.want)
		}
	}
}

func TestKeywordThemeFirstMatchWins(t *testing.T) {
	// "best service" matches products ("service") before quality ("best")
	// in the general table.
	if got := KeywordTheme("best service", ThemeRules("general")); got != "products" {
		t.Errorf("expected products, got %q", got)
	}
}

func TestAssignMatchTypeWordCountBase(t *testing.T) {
	tests := []struct {
		text   string
		volume int
		want   string
	}{
		{"crm", 5000, types.MatchBroad},
		{"crm software", 5000, types.MatchPhrase},
		{"crm software comparison", 5000, types.MatchExact},
	}

	for _, tt := range tests {
		r := &types.KeywordRecord{Text: tt.text, SearchVolume: tt.volume}
		AssignMatchType(r)
		if r.PreliminaryMatchType != tt.want {
			t.Errorf("AssignMatchType(%q) = %q, want %q", tt.text, r.PreliminaryMatchType, tt.want)
		}
	}
}

func TestAssignMatchTypeCommercialIntentOverride(t *testing.T) {
	r := &types.KeywordRecord{Text: "buy cheap crm software", SearchVolume: 5000, CommercialIntent: 0.9}
	AssignMatchType(r)
	if r.PreliminaryMatchType != types.MatchPhrase {
		t.Errorf("expected phrase for high-intent keyword, got %q", r.PreliminaryMatchType)
	}

	// Intent exactly 0.7 does not trigger the override.
	r = &types.KeywordRecord{Text: "buy cheap crm software", SearchVolume: 5000, CommercialIntent: 0.7}
	AssignMatchType(r)
	if r.PreliminaryMatchType != types.MatchExact {
		t.Errorf("expected exact at intent boundary, got %q", r.PreliminaryMatchType)
	}
}

func TestAssignMatchTypeVolumeOverrideRunsLast(t *testing.T) {
	// High volume forces broad even when high intent forced phrase.
	r := &types.KeywordRecord{Text: "buy crm", SearchVolume: 50000, CommercialIntent: 0.9}
	AssignMatchType(r)
	if r.PreliminaryMatchType != types.MatchBroad {
		t.Errorf("expected broad for high volume, got %q", r.PreliminaryMatchType)
	}

	// Low volume forces exact.
	r = &types.KeywordRecord{Text: "buy crm", SearchVolume: 500, CommercialIntent: 0.9}
	AssignMatchType(r)
	if r.PreliminaryMatchType != types.MatchExact {
		t.Errorf("expected exact for low volume, got %q", r.PreliminaryMatchType)
	}

	// Volume inside (1000, 10000] leaves the intent override in place.
	r = &types.KeywordRecord{Text: "buy crm", SearchVolume: 5000, CommercialIntent: 0.9}
	AssignMatchType(r)
	if r.PreliminaryMatchType != types.MatchPhrase {
		t.Errorf("expected phrase for mid volume, got %q", r.PreliminaryMatchType)
	}
}

func TestKeywordType(t *testing.T) {
	tests := []struct {
		keyword string
		want    string
	}{
		{"crm", "broad"},
		{"crm software", "phrase"},
		{"best crm software 2025", "long-tail"},
	}

	for _, tt := range tests {
		if got := KeywordType(tt.keyword); got != tt.want {
			t.Errorf("KeywordType(%q) = %q, want %q", tt.keyword, got, tt.want)
		}
	}
}
