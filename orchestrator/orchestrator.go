package orchestrator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sachin9536/SEM-Campaign-Automation/common"
	"github.com/sachin9536/SEM-Campaign-Automation/config"
	"github.com/sachin9536/SEM-Campaign-Automation/pipeline"
	"github.com/sachin9536/SEM-Campaign-Automation/report"
	"github.com/sachin9536/SEM-Campaign-Automation/scrape"
	"github.com/sachin9536/SEM-Campaign-Automation/shared/kafka"
	"github.com/sachin9536/SEM-Campaign-Automation/sources"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// RunOnce executes a single end-to-end discovery cycle: scrape seed material,
// gather candidates from all configured sources, process and rank them, then
// publish to Kafka and archive a report if those integrations are configured.
func RunOnce(ctx context.Context) error {
	// Initialize logging
	log.SetOutput(os.Stderr)
	log.Println("=== Keyword Discovery Orchestrator ===")

	cfg := config.Load()

	// Step 1: Scrape brand and competitor sites for seed material
	scraper := scrape.NewScraper()

	var brand *scrape.SiteData
	if cfg.BrandURL != "" {
		log.Printf("Scraping brand site: %s", cfg.BrandURL)
		brand = scraper.Site(cfg.BrandURL)
		if brand.ScrapeError != "" {
			log.Printf("Warning: brand scrape failed: %s", brand.ScrapeError)
		}
	}

	var competitors []*scrape.SiteData
	if len(cfg.CompetitorURLs) > 0 {
		log.Printf("Scraping %d competitor site(s)...", len(cfg.CompetitorURLs))
		competitors = scraper.Sites(cfg.CompetitorURLs)
	}

	seeds := scrape.SeedKeywords(brand, competitors)
	for _, feedURL := range cfg.CompetitorFeeds {
		feedSeeds, err := scrape.FeedSeeds(feedURL, 10)
		if err != nil {
			log.Printf("Warning: failed to read competitor feed %s: %v", feedURL, err)
			continue
		}
		seeds = append(seeds, feedSeeds...)
	}
	seeds = dedupeSeeds(seeds)
	if len(seeds) == 0 {
		return fmt.Errorf("no seed keywords discovered; set BRAND_URL or COMPETITOR_URLS")
	}
	log.Printf("Collected %d seed keyword(s)", len(seeds))

	// Step 2: Assemble the configured candidate sources
	srcs, cleanup := buildSources(cfg, brand, competitors)
	defer cleanup()

	// Step 3: Gather raw candidates
	candidates := sources.Gather(ctx, seeds, srcs...)
	log.Printf("Gathered %d raw candidate(s) from %d source(s)", len(candidates), len(srcs))

	// Step 4: Process and rank
	pl := pipeline.New(pipeline.Config{
		MinSearchVolume:  cfg.MinSearchVolume,
		BusinessType:     cfg.BusinessType,
		NegativeKeywords: cfg.NegativeKeywords,
	})
	records := pl.Run(candidates)

	ranked := pipeline.FilterAndRank(records, pipeline.RankConfig{
		MaxCompetition: cfg.MaxCompetition,
		MinRelevance:   cfg.MinRelevance,
	})
	log.Printf("Ranked dataset: %d keyword(s) passed quality gates", len(ranked))

	result := &types.DiscoveryResult{
		BusinessType: cfg.BusinessType,
		KeywordCount: len(ranked),
		SourceCounts: countSources(ranked),
		Keywords:     ranked,
	}

	// Step 5: Publish the dataset to Kafka if configured
	if len(cfg.KafkaBrokers) > 0 {
		if err := publishDataset(cfg, result); err != nil {
			log.Printf("Warning: Kafka publish failed: %v", err)
		}
	} else {
		log.Printf("Kafka not configured; skipping publish")
	}

	// Step 6: Archive CSV/JSON reports to S3 if configured
	if cfg.S3Bucket != "" {
		archiveReport(ctx, cfg, result)
	} else {
		log.Printf("S3 not configured; skipping report archive")
	}

	displaySummary(result, len(candidates), len(records))

	log.Println("=== Orchestrator Run Complete ===")
	return nil
}

// buildSources assembles every source the environment enables. The cleanup
// function closes any held connections and is safe to call once.
func buildSources(cfg *config.Config, brand *scrape.SiteData, competitors []*scrape.SiteData) ([]sources.Source, func()) {
	var srcs []sources.Source
	var closers []func() error

	if cfg.CohereAPIKey != "" {
		chat := sources.NewCohereChat(cfg.CohereAPIKey, cfg.CohereModel)
		srcs = append(srcs, sources.NewLLMExpansion(chat, businessContext(cfg, brand, competitors)))
	} else {
		log.Printf("Warning: COHERE_API_KEY not set; LLM expansion disabled")
	}

	var cache sources.SuggestionCache
	if cfg.RedisAddr != "" {
		rc, err := sources.NewRedisCache(sources.RedisCacheConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis unavailable, autocomplete cache disabled: %v", err)
		} else {
			cache = rc
			closers = append(closers, rc.Close)
		}
	}
	srcs = append(srcs, sources.NewAutocomplete(sources.AutocompleteConfig{Cache: cache}))

	srcs = append(srcs, sources.NewUbersuggest(sources.UbersuggestConfig{}))

	if cfg.WordstreamAPIKey != "" {
		srcs = append(srcs, sources.NewWordstream(sources.WordstreamConfig{APIKey: cfg.WordstreamAPIKey}))
	}

	if cfg.PlannerCSVPath != "" {
		srcs = append(srcs, sources.NewPlannerImport(cfg.PlannerCSVPath))
	}

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("Warning: cleanup error: %v", err)
			}
		}
	}
	return srcs, cleanup
}

// businessContext builds the prompt context for LLM expansion from scraped
// site data and the configured profile.
func businessContext(cfg *config.Config, brand *scrape.SiteData, competitors []*scrape.SiteData) sources.BusinessContext {
	bc := sources.BusinessContext{TargetLocations: cfg.TargetLocations}

	if brand != nil {
		bc.BrandName = brand.Title
		bc.BrandDescription = brand.MetaDescription
		bc.BrandServices = flattenOfferings(brand)
	}
	for _, c := range competitors {
		if c == nil || c.ScrapeError != "" {
			continue
		}
		if c.Title != "" {
			bc.CompetitorNames = append(bc.CompetitorNames, c.Title)
		}
		bc.CompetitorOffers = append(bc.CompetitorOffers, flattenOfferings(c)...)
	}
	return bc
}

func flattenOfferings(site *scrape.SiteData) []string {
	var out []string
	for _, items := range site.ProductsServices {
		out = append(out, items...)
	}
	return out
}

// publishDataset sends the ranked dataset to the configured Kafka topic.
func publishDataset(cfg *config.Config, result *types.DiscoveryResult) error {
	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	if err != nil {
		return fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	defer producer.Close()

	key := time.Now().UTC().Format("2006-01-02T15-04-05Z")
	return producer.Publish(key, result)
}

// archiveReport uploads CSV and JSON report artifacts to S3. Failures are
// logged, not fatal; the run's primary output is the published dataset.
func archiveReport(ctx context.Context, cfg *config.Config, result *types.DiscoveryResult) {
	s3Client, err := common.NewS3(ctx, common.S3Config{
		Region:       cfg.S3Region,
		Profile:      cfg.S3Profile,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (report archive disabled)", err)
		return
	}

	archiver, err := report.NewArchiver(report.ArchiverConfig{
		Uploader: s3Client,
		Bucket:   cfg.S3Bucket,
		Prefix:   cfg.S3Prefix,
	})
	if err != nil {
		log.Printf("Warning: %v (report archive disabled)", err)
		return
	}

	uctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	if _, _, err := archiver.Archive(uctx, result); err != nil {
		log.Printf("Warning: report archive failed: %v", err)
	}
}

// dedupeSeeds removes duplicate seeds while preserving first-seen order.
func dedupeSeeds(seeds []string) []string {
	seen := make(map[string]struct{}, len(seeds))
	out := make([]string, 0, len(seeds))
	for _, s := range seeds {
		key := types.Normalize(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func countSources(records []*types.KeywordRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Source]++
	}
	return counts
}

func displaySummary(result *types.DiscoveryResult, gathered, processed int) {
	// Print summary to stderr
	log.Println("\n=== Discovery Summary ===")
	log.Printf("Raw Candidates:     %d", gathered)
	log.Printf("After Processing:   %d", processed)
	log.Printf("Ranked Keywords:    %d", result.KeywordCount)
	for source, count := range result.SourceCounts {
		log.Printf("  %-16s %d", source+":", count)
	}
	log.Println("=========================")
}
