package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/sachin9536/SEM-Campaign-Automation/demo/tui"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	businessType := flag.String("business-type", "service", "Theme table to use (general, ecommerce, saas, service)")
	flag.Parse()

	// Create TUI model over a canned candidate batch
	m := tui.NewModel(*businessType, sampleCandidates())

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// sampleCandidates returns a batch shaped like a real multi-source gather:
// overlapping suggestions, plural variants, and mixed metric coverage.
func sampleCandidates() []types.KeywordCandidate {
	return []types.KeywordCandidate{
		{Text: "seo services", Source: types.SourceLLMExpansion, SearchVolume: 8200, Competition: 0.72, CPC: 14.5, CommercialIntent: 0.6},
		{Text: "seo service", Source: types.SourceAutocomplete},
		{Text: "best seo services near me", Source: types.SourceAutocomplete},
		{Text: "seo", Source: types.SourceScrapedTool, SearchVolume: 90500, Competition: 0.85, CPC: 12.0},
		{Text: "affordable seo agency", Source: types.SourceLLMExpansion, SearchVolume: 2400, Competition: 0.55, CPC: 9.8, CommercialIntent: 0.7},
		{Text: "seo agency pricing", Source: types.SourceWordstream, SearchVolume: 1900, Competition: 0.48, CPC: 11.2},
		{Text: "hire seo consultant", Source: types.SourceLLMExpansion, SearchVolume: 1300, Competition: 0.41, CPC: 8.4, CommercialIntent: 0.8},
		{Text: "what is technical seo", Source: types.SourceAutocomplete},
		{Text: "seo audit services", Source: types.SourcePlannerImport, SearchVolume: 3600, Competition: 0.63, CPC: 10.1},
		{Text: "seo audit service", Source: types.SourceScrapedTool},
		{Text: "local seo company", Source: types.SourceWordstream, SearchVolume: 4400, Competition: 0.58, CPC: 13.7},
		{Text: "buy backlinks cheap", Source: types.SourceScrapedTool, SearchVolume: 880, Competition: 0.33, CPC: 4.2},
		{Text: "ecommerce seo experts", Source: types.SourceLLMExpansion, SearchVolume: 1100, Competition: 0.46, CPC: 12.9, CommercialIntent: 0.65},
		{Text: "seo company vs freelancer", Source: types.SourceAutocomplete},
		{Text: "professional link building services", Source: types.SourcePlannerImport, SearchVolume: 2900, Competition: 0.69, CPC: 15.3},
	}
}
