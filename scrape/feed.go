package scrape

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

// FeedSeeds extracts seed phrases from a competitor blog or news feed.
// Item titles and descriptions go through the same phrase extraction as
// scraped site text.
func FeedSeeds(feedURL string, maxItems int) ([]string, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if maxItems > 0 && count > maxItems {
		count = maxItems
	}

	var seeds []string
	seen := make(map[string]struct{})
	for i := 0; i < count; i++ {
		item := feed.Items[i]
		for _, phrase := range PhrasesFromText(item.Title) {
			if _, ok := seen[phrase]; ok {
				continue
			}
			seen[phrase] = struct{}{}
			seeds = append(seeds, phrase)
		}
		for _, phrase := range PhrasesFromText(item.Description) {
			if _, ok := seen[phrase]; ok {
				continue
			}
			seen[phrase] = struct{}{}
			seeds = append(seeds, phrase)
		}
	}

	if len(seeds) > MaxSeedKeywords {
		seeds = seeds[:MaxSeedKeywords]
	}
	return seeds, nil
}
