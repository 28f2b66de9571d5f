package scrape

import (
	"regexp"
	"strings"
)

// MaxSeedKeywords caps the seed list handed to the source adapters.
const MaxSeedKeywords = 20

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {},
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

var digitsRe = regexp.MustCompile(`^\d+$`)

// SeedKeywords extracts seed keywords from brand and competitor site data:
// phrases from titles, meta descriptions, headings, and offering lists.
// The result keeps first-seen order and is capped at MaxSeedKeywords.
func SeedKeywords(brand *SiteData, competitors []*SiteData) []string {
	var seen = make(map[string]struct{})
	var seeds []string

	add := func(phrases []string) {
		for _, phrase := range phrases {
			if _, ok := seen[phrase]; ok {
				continue
			}
			seen[phrase] = struct{}{}
			seeds = append(seeds, phrase)
		}
	}

	collect := func(site *SiteData, maxItems int) {
		if site == nil || site.ScrapeError != "" {
			return
		}
		add(PhrasesFromText(site.Title))
		add(PhrasesFromText(site.MetaDescription))
		for _, items := range site.ProductsServices {
			for i, item := range items {
				if i >= maxItems {
					break
				}
				add(PhrasesFromText(item))
			}
		}
		for i, heading := range site.Headings {
			if i >= 5 {
				break
			}
			add(PhrasesFromText(heading))
		}
	}

	collect(brand, 5)
	for _, competitor := range competitors {
		collect(competitor, 3)
	}

	if len(seeds) > MaxSeedKeywords {
		seeds = seeds[:MaxSeedKeywords]
	}
	return seeds
}

// PhrasesFromText extracts candidate phrases from free text: stop-word
// filtered single words longer than 3 characters, bigrams longer than 5,
// and trigrams longer than 8.
func PhrasesFromText(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	words := strings.Fields(cleaned)

	var phrases []string
	seen := make(map[string]struct{})
	add := func(phrase string) {
		if _, ok := seen[phrase]; ok {
			return
		}
		seen[phrase] = struct{}{}
		phrases = append(phrases, phrase)
	}

	for _, word := range words {
		if len(word) > 3 && !isStopWord(word) && !digitsRe.MatchString(word) {
			add(word)
		}
	}

	for i := 0; i+1 < len(words); i++ {
		if isStopWord(words[i]) || isStopWord(words[i+1]) ||
			len(words[i]) <= 2 || len(words[i+1]) <= 2 {
			continue
		}
		bigram := words[i] + " " + words[i+1]
		if len(bigram) > 5 {
			add(bigram)
		}
	}

	for i := 0; i+2 < len(words); i++ {
		if isStopWord(words[i]) || isStopWord(words[i+1]) || isStopWord(words[i+2]) ||
			len(words[i]) <= 2 || len(words[i+1]) <= 2 || len(words[i+2]) <= 2 {
			continue
		}
		trigram := words[i] + " " + words[i+1] + " " + words[i+2]
		if len(trigram) > 8 {
			add(trigram)
		}
	}

	return phrases
}

func isStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
