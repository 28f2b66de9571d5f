package scoring

import (
	"testing"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func TestDifficultyTerms(t *testing.T) {
	tests := []struct {
		name             string
		keyword          string
		competition      float64
		volume           int
		commercialIntent float64
		want             int
	}{
		{
			// 40 (1 word) + 24 (0.8x30) + 15 (volume tier) + 0 = 79
			name:        "single word high competition",
			keyword:     "crm",
			competition: 0.8,
			volume:      8000,
			want:        79,
		},
		{
			// 25 (2 words) + 18 (0.6x30) + 10 (volume tier) + 7.5 (0.5x15) = 60.5 -> 60
			name:             "two words truncates",
			keyword:          "crm software",
			competition:      0.6,
			volume:           5000,
			commercialIntent: 0.5,
			want:             60,
		},
		{
			// 15 (3 words) + 9 (0.3x30) + 5 (low volume) + 0 = 29
			name:        "three word long tail",
			keyword:     "open source crm",
			competition: 0.3,
			volume:      400,
			want:        29,
		},
		{
			// 10 (4+ words) + 0 + 5 + 0 = 15
			name:    "four words minimal metrics",
			keyword: "free crm for small teams",
			volume:  100,
			want:    15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difficulty(tt.keyword, tt.competition, tt.volume, tt.commercialIntent)
			if got != tt.want {
				t.Errorf("Difficulty = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDifficultyBrandAndLocalDiscounts(t *testing.T) {
	// "acme company" : 25 (2 words) + 30 (1.0x30) + 20 (>10000) + 15 (1.0x15)
	// = 90, minus 20 brand discount = 70
	got := Difficulty("acme company", 1.0, 20000, 1.0)
	if got != 70 {
		t.Errorf("brand discount: got %d, want 70", got)
	}

	// Same metrics with a local indicator stacked on: "company near me"
	// = 15 (3 words) + 30 + 20 + 15 = 80, minus 20 brand minus 10 local = 50
	got = Difficulty("company near me", 1.0, 20000, 1.0)
	if got != 50 {
		t.Errorf("brand+local discount: got %d, want 50", got)
	}
}

func TestDifficultyClamped(t *testing.T) {
	// Max terms: 40 + 30 + 20 + 15 = 105, clamps to 100.
	if got := Difficulty("crm", 1.0, 20000, 1.0); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}

	// Discounts can push below zero: 10 + 0 + 5 + 0 - 20 - 10 = -15, clamps to 0.
	if got := Difficulty("local company website near me", 0, 100, 0); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}

func TestDifficultyCategory(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, types.DifficultyHigh},
		{70, types.DifficultyHigh},
		{69, types.DifficultyMedium},
		{40, types.DifficultyMedium},
		{39, types.DifficultyLow},
		{0, types.DifficultyLow},
	}

	for _, tt := range tests {
		if got := DifficultyCategory(tt.score); got != tt.want {
			t.Errorf("DifficultyCategory(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreDifficultyFillsRecord(t *testing.T) {
	r := &types.KeywordRecord{Text: "crm", Competition: 0.8, SearchVolume: 8000}
	ScoreDifficulty(r)
	if r.DifficultyScore != 79 {
		t.Errorf("DifficultyScore = %d, want 79", r.DifficultyScore)
	}
	if r.DifficultyCategory != types.DifficultyHigh {
		t.Errorf("DifficultyCategory = %q, want high", r.DifficultyCategory)
	}
}

func TestRelevance(t *testing.T) {
	// Volume at cap: 1.0x0.3 + (1-0.5)x0.4 + 0.5x0.3 = 0.65
	got := Relevance(20000, 0.5, 0.5)
	if diff := got - 0.65; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Relevance = %v, want 0.65", got)
	}

	// Zero metrics: inverse competition alone contributes 0.4.
	got = Relevance(0, 0, 0)
	if diff := got - 0.4; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Relevance = %v, want 0.4", got)
	}
}

func TestIsBrandAndLocalKeyword(t *testing.T) {
	if !IsBrandKeyword("acme official site") {
		t.Error("expected brand keyword")
	}
	if IsBrandKeyword("running shoes") {
		t.Error("did not expect brand keyword")
	}
	if !IsLocalKeyword("dentist near me") {
		t.Error("expected local keyword")
	}
	if IsLocalKeyword("dentist reviews") {
		t.Error("did not expect local keyword")
	}
}
