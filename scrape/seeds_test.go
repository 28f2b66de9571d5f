package scrape

import (
	"testing"
)

func TestPhrasesFromText(t *testing.T) {
	phrases := PhrasesFromText("Professional SEO Services for the Modern Business!")

	want := map[string]bool{
		"professional":              false,
		"services":                  false,
		"modern":                    false,
		"business":                  false,
		"professional seo":          false,
		"seo services":              false,
		"modern business":           false,
		"professional seo services": false,
	}
	for _, p := range phrases {
		if _, ok := want[p]; !ok {
			t.Errorf("unexpected phrase %q", p)
			continue
		}
		want[p] = true
	}
	for p, found := range want {
		if !found {
			t.Errorf("missing phrase %q", p)
		}
	}
}

func TestPhrasesFromTextFilters(t *testing.T) {
	phrases := PhrasesFromText("the and 2024 a of")
	if len(phrases) != 0 {
		t.Errorf("stop words and digits should yield no phrases, got %v", phrases)
	}

	if got := PhrasesFromText(""); got != nil {
		t.Errorf("empty text should yield nil, got %v", got)
	}
}

func TestPhrasesFromTextSkipsStopWordNGrams(t *testing.T) {
	phrases := PhrasesFromText("services for business")
	for _, p := range phrases {
		if p == "services for" || p == "for business" || p == "services for business" {
			t.Errorf("n-gram crossing a stop word should be skipped: %q", p)
		}
	}
}

func TestSeedKeywords(t *testing.T) {
	brand := &SiteData{
		Title:    "Acme Plumbing Services",
		Headings: []string{"Drain Cleaning"},
		ProductsServices: map[string][]string{
			"services": {"water heater installation"},
		},
	}
	competitors := []*SiteData{
		{Title: "Rival Plumbing"},
		{Title: "should be skipped", ScrapeError: "timeout"},
		nil,
	}

	seeds := SeedKeywords(brand, competitors)
	if len(seeds) == 0 {
		t.Fatal("expected seeds from brand data")
	}
	if len(seeds) > MaxSeedKeywords {
		t.Fatalf("got %d seeds, cap is %d", len(seeds), MaxSeedKeywords)
	}

	has := func(want string) bool {
		for _, s := range seeds {
			if s == want {
				return true
			}
		}
		return false
	}
	if !has("acme plumbing") {
		t.Errorf("missing brand title bigram, seeds: %v", seeds)
	}
	if !has("drain cleaning") {
		t.Errorf("missing heading bigram, seeds: %v", seeds)
	}
	if !has("water heater installation") {
		t.Errorf("missing offering trigram, seeds: %v", seeds)
	}
	if !has("rival plumbing") {
		t.Errorf("missing competitor title bigram, seeds: %v", seeds)
	}
	if has("skipped") {
		t.Error("failed competitor scrape should contribute nothing")
	}
}

func TestSeedKeywordsNoData(t *testing.T) {
	if seeds := SeedKeywords(nil, nil); len(seeds) != 0 {
		t.Errorf("expected no seeds, got %v", seeds)
	}
}

func TestSeedKeywordsDeduplicates(t *testing.T) {
	brand := &SiteData{Title: "Plumbing Services"}
	competitors := []*SiteData{{Title: "Plumbing Services"}}

	seeds := SeedKeywords(brand, competitors)
	counts := make(map[string]int)
	for _, s := range seeds {
		counts[s]++
	}
	for s, n := range counts {
		if n > 1 {
			t.Errorf("seed %q appears %d times", s, n)
		}
	}
}
