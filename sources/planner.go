package sources

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// PlannerImport loads a Google Keyword Planner export. Planner files come in
// several shapes depending on the export path: comma- or tab-separated,
// UTF-8 or UTF-16, localized column headers, currency symbols in bid
// columns, and competition as either a ratio or a low/medium/high label.
type PlannerImport struct {
	path string
}

// NewPlannerImport creates the adapter for a planner export file. A missing
// file is not an error; the adapter just contributes nothing.
func NewPlannerImport(path string) *PlannerImport {
	return &PlannerImport{path: path}
}

func (p *PlannerImport) Name() string { return types.SourcePlannerImport }

// Discover reads the export and maps rows to candidates. Seeds are ignored;
// the file defines its own keyword set.
func (p *PlannerImport) Discover(ctx context.Context, seeds []string) ([]types.KeywordCandidate, error) {
	if p.path == "" {
		return nil, nil
	}
	f, err := os.Open(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open planner export: %w", err)
	}
	defer f.Close()

	return ParsePlannerExport(f)
}

// ParsePlannerExport parses planner rows from a reader. The BOM decides the
// encoding (UTF-16 exports always carry one); the header line decides the
// delimiter.
func ParsePlannerExport(r io.Reader) ([]types.KeywordCandidate, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	buffered := bufio.NewReader(decoded)

	header, err := buffered.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read planner export: %w", err)
	}
	delimiter := ','
	if firstLine, _, _ := strings.Cut(string(header), "\n"); strings.ContainsRune(firstLine, '\t') {
		delimiter = '\t'
	}

	reader := csv.NewReader(buffered)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse planner export: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	keywordCol := findColumn(columns, "keyword", "search term", "query")
	if keywordCol < 0 {
		return nil, fmt.Errorf("planner export missing keyword column")
	}
	volumeCol := findColumn(columns, "avg. monthly searches", "average monthly searches", "search volume")
	competitionCol := findColumn(columns, "competition")
	lowBidCol := findColumn(columns, "top of page bid (low range)", "top of page bid (low)", "top of page bid low range")
	highBidCol := findColumn(columns, "top of page bid (high range)", "top of page bid (high)", "top of page bid high range")

	var candidates []types.KeywordCandidate
	for _, row := range rows[1:] {
		keyword := strings.TrimSpace(cell(row, keywordCol))
		if keyword == "" {
			continue
		}

		low := parseCurrency(cell(row, lowBidCol))
		high := parseCurrency(cell(row, highBidCol))
		cpc := low
		if cpc == 0 {
			cpc = high
		}

		candidates = append(candidates, types.KeywordCandidate{
			Text:          keyword,
			Source:        types.SourcePlannerImport,
			SearchVolume:  parseCount(cell(row, volumeCol)),
			Competition:   parseCompetition(cell(row, competitionCol)),
			CPC:           cpc,
			TopOfPageLow:  low,
			TopOfPageHigh: high,
		})
	}

	return candidates, nil
}

func findColumn(columns map[string]int, aliases ...string) int {
	for _, alias := range aliases {
		if i, ok := columns[alias]; ok {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseCount parses an integer that may carry thousands separators.
func parseCount(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseCurrency parses a bid value, stripping currency markers.
func parseCurrency(s string) float64 {
	for _, symbol := range []string{"$", "INR", "₹", ","} {
		s = strings.ReplaceAll(s, symbol, "")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCompetition maps the planner's competition column to [0,1]. Label
// exports use Low/Medium/High; index exports use a ratio.
func parseCompetition(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch strings.ToLower(s) {
	case "low":
		return 0.3
	case "medium":
		return 0.6
	case "high":
		return 0.8
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0.5
	}
	return v
}
