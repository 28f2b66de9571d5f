// Package scrape fetches brand and competitor websites and distills them
// into the text blobs the seed extractor consumes.
package scrape

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	WorkerCount    = 5
	scraperTimeout = 30 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// SiteData holds the structured content extracted from one page.
type SiteData struct {
	URL              string              `json:"url"`
	Title            string              `json:"title"`
	MetaDescription  string              `json:"meta_description"`
	MetaKeywords     []string            `json:"meta_keywords,omitempty"`
	Headings         []string            `json:"headings,omitempty"`
	MainContent      string              `json:"main_content,omitempty"`
	ProductsServices map[string][]string `json:"products_services,omitempty"`
	FetchedAt        time.Time           `json:"fetched_at"`
	ScrapeError      string              `json:"scrape_error,omitempty"`
}

// Scraper fetches pages and extracts the fields keyword discovery needs.
type Scraper struct {
	client *http.Client
}

// NewScraper creates a scraper with a bounded per-request timeout.
func NewScraper() *Scraper {
	return &Scraper{client: &http.Client{Timeout: scraperTimeout}}
}

// Site scrapes one URL. Failures return a SiteData with ScrapeError set
// rather than nil, so callers can report partial results.
func (s *Scraper) Site(url string) *SiteData {
	data := &SiteData{URL: url, FetchedAt: time.Now()}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		data.ScrapeError = err.Error()
		return data
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		data.ScrapeError = err.Error()
		return data
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data.ScrapeError = fmt.Sprintf("status %d", resp.StatusCode)
		return data
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		data.ScrapeError = fmt.Errorf("failed to parse page: %w", err).Error()
		return data
	}

	s.extract(doc, data)

	// Readability gives a cleaner main-content text than walking the DOM.
	if article, err := readability.FromURL(url, scraperTimeout); err == nil {
		data.MainContent = article.TextContent
	}

	return data
}

// Sites scrapes a URL list with a worker pool; order of results matches the
// input order.
func (s *Scraper) Sites(urls []string) []*SiteData {
	results := make([]*SiteData, len(urls))

	var wg sync.WaitGroup
	jobs := make(chan int, len(urls))

	for w := 0; w < WorkerCount; w++ {
		go func(workerID int) {
			for i := range jobs {
				results[i] = s.Site(urls[i])
				if results[i].ScrapeError != "" {
					log.Printf("[Worker %d] Failed to scrape %s: %s", workerID, urls[i], results[i].ScrapeError)
				} else {
					log.Printf("[Worker %d] Scraped: %s", workerID, urls[i])
				}
				wg.Done()
			}
		}(w)
	}

	for i := range urls {
		wg.Add(1)
		jobs <- i
	}
	wg.Wait()
	close(jobs)

	return results
}

func (s *Scraper) extract(doc *goquery.Document, data *SiteData) {
	doc.Find("script, style, nav, footer, aside").Remove()

	data.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if data.Title == "" {
		data.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		data.MetaDescription = strings.TrimSpace(desc)
	}
	if kw, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, part := range strings.Split(kw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				data.MetaKeywords = append(data.MetaKeywords, part)
			}
		}
	}

	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" && len(data.Headings) < 20 {
			data.Headings = append(data.Headings, text)
		}
	})

	// Product/service blocks are usually list items or cards under sections
	// whose class or id mentions the offering.
	data.ProductsServices = make(map[string][]string)
	for _, category := range []string{"product", "service", "solution", "feature"} {
		selector := fmt.Sprintf(`[class*="%s"] li, [id*="%s"] li, [class*="%s"] h3`, category, category, category)
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if text == "" || len(text) > 100 || len(data.ProductsServices[category]) >= 10 {
				return
			}
			data.ProductsServices[category] = append(data.ProductsServices[category], text)
		})
		if len(data.ProductsServices[category]) == 0 {
			delete(data.ProductsServices, category)
		}
	}
}
