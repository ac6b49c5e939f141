package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rbenhaddou/squad-roster/internal/roster"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// previewRows is how many players the text summary lists.
const previewRows = 5

// OutputResult contains data to be output
type OutputResult struct {
	FetchedAt   time.Time        `json:"fetched_at"`
	SourceURL   string           `json:"source_url"`
	PlayerCount int              `json:"player_count"`
	Summary     *roster.Summary  `json:"summary"`
	Players     []*roster.Player `json:"players,omitempty"`
	CSVPath     string           `json:"csv_path,omitempty"`
	JSONPath    string           `json:"json_path,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	fmt.Fprintf(w, "Scraped %d players from %s\n", result.PlayerCount, result.SourceURL)

	s := result.Summary
	fmt.Fprintf(w, "\nTotal Players: %d\n", s.TotalPlayers)

	if len(s.Positions) > 0 {
		fmt.Fprintln(w, "\nPlayers by Position:")
		for _, pos := range sortedPositions(s.Positions) {
			fmt.Fprintf(w, "  %s: %d\n", pos, s.Positions[pos])
		}
	}

	fmt.Fprintf(w, "\nTotal Caps: %d\n", s.TotalCaps)
	fmt.Fprintf(w, "Total Goals: %d\n", s.TotalGoals)

	if s.AverageAge != nil {
		fmt.Fprintf(w, "Average Age: %.1f\n", *s.AverageAge)
	}

	if s.TopScorer != nil {
		fmt.Fprintf(w, "\nTop Scorer: %s (%s goals, %s caps)\n",
			s.TopScorer.Name, intText(s.TopScorer.Goals), intText(s.TopScorer.Caps))
	}
	if s.MostCapped != nil {
		fmt.Fprintf(w, "Most Experienced: %s (%s caps, %s goals)\n",
			s.MostCapped.Name, intText(s.MostCapped.Caps), intText(s.MostCapped.Goals))
	}

	if len(result.Players) > 0 {
		fmt.Fprintf(w, "\nFirst %d players:\n", min(previewRows, len(result.Players)))
		for i, p := range result.Players {
			if i >= previewRows {
				break
			}
			fmt.Fprintf(w, "  %-3s %-3s %-25s %5s %6s  %s\n",
				intText(p.Number), p.Position, p.Name, intText(p.Caps), intText(p.Goals), p.Club)
		}
	}

	if result.CSVPath != "" {
		fmt.Fprintf(w, "\nData saved to %s\n", result.CSVPath)
	}
	if result.JSONPath != "" {
		fmt.Fprintf(w, "Data saved to %s\n", result.JSONPath)
	}

	return nil
}

// sortedPositions orders position codes by frequency, most common first,
// with name as the tie-break so output stays stable.
func sortedPositions(counts map[string]int) []string {
	positions := make([]string, 0, len(counts))
	for pos := range counts {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if counts[positions[i]] != counts[positions[j]] {
			return counts[positions[i]] > counts[positions[j]]
		}
		return positions[i] < positions[j]
	})
	return positions
}

func intText(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}
