package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rbenhaddou/squad-roster/internal/cache"
	"github.com/rbenhaddou/squad-roster/internal/export"
	"github.com/rbenhaddou/squad-roster/internal/logger"
	"github.com/rbenhaddou/squad-roster/internal/roster"
	"github.com/rbenhaddou/squad-roster/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL      string
	flagOutput   string
	flagJSONOut  string
	flagFormat   string
	flagDataDir  string
	flagCacheTTL time.Duration
	flagRefresh  bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// A .env file can pre-seat the URL and data directory; flags win.
	godotenv.Load() // nolint:errcheck

	cmd := &cobra.Command{
		Use:   "squad-roster",
		Short: "Scrape a national team squad roster into CSV/JSON",
		Long: `A CLI tool that fetches a squad page, locates the roster table,
normalizes it with derived birth-year, age and goal-ratio columns, exports
CSV/JSON and prints summary statistics.`,
		RunE: runFetch,
	}

	cmd.Flags().StringVar(&flagURL, "url", os.Getenv("SQUADROSTER_URL"), "Squad page URL (or env: SQUADROSTER_URL)")
	cmd.Flags().StringVar(&flagOutput, "output", export.DefaultCSVFilename, "CSV output path ('' to skip CSV export)")
	cmd.Flags().StringVar(&flagJSONOut, "json-output", "", "JSON output path (optional)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", dataDirDefault(), "Data directory for the roster cache")
	cmd.Flags().DurationVar(&flagCacheTTL, "cache-ttl", cache.DefaultTTL, "How long a cached roster is reused")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Ignore the cached roster and refetch")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

func dataDirDefault() string {
	if dir := os.Getenv("SQUADROSTER_DATA_DIR"); dir != "" {
		return dir
	}
	return "~/.local/share/squad-roster"
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	store, err := cache.New(flagDataDir, flagCacheTTL)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	r := loadOrFetch(store)
	if r == nil {
		// All pipeline failures collapse to one user-visible outcome; the
		// cause has already been logged.
		fmt.Fprintln(os.Stderr, "Roster not found.")
		os.Exit(ExitError)
		return nil
	}

	result := &OutputResult{
		FetchedAt:   r.FetchedAt,
		SourceURL:   r.SourceURL,
		PlayerCount: len(r.Players),
		Summary:     roster.Stats(r),
		Players:     r.Players,
	}

	if flagOutput != "" {
		if err := export.SaveCSV(flagOutput, r); err != nil {
			return fmt.Errorf("saving CSV: %w", err)
		}
		result.CSVPath = flagOutput
	}
	if flagJSONOut != "" {
		if err := export.SaveJSON(flagJSONOut, r); err != nil {
			return fmt.Errorf("saving JSON: %w", err)
		}
		result.JSONPath = flagJSONOut
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	os.Exit(ExitSuccess)
	return nil
}

// loadOrFetch serves the cached roster when it is still fresh, otherwise
// runs the fetch-locate-assemble pipeline. Returns nil when no roster could
// be produced.
func loadOrFetch(store *cache.Cache) *roster.Roster {
	if !flagRefresh {
		cached, err := store.Load()
		if err != nil {
			logger.Warn("Discarding unreadable roster cache", logger.Fields{"error": err.Error()})
		} else if cached != nil {
			logger.Debug("Serving cached roster", logger.Fields{
				"players":    len(cached.Players),
				"fetched_at": cached.FetchedAt,
			})
			return cached
		}
	}

	sc := scraper.New(flagURL)
	logger.Debug("Fetching squad page", logger.Fields{"url": sc.URL()})

	table, err := sc.Fetch()
	if err != nil {
		logger.Error("Locating roster table failed", logger.Fields{"url": sc.URL()}, err)
		return nil
	}

	r, err := roster.Assemble(table.Headers, table.Rows)
	if err != nil {
		logger.Error("Assembling roster failed", logger.Fields{
			"url":  sc.URL(),
			"rows": len(table.Rows),
		}, err)
		return nil
	}
	r.SourceURL = sc.URL()

	if err := store.Save(r); err != nil {
		logger.Warn("Saving roster cache failed", logger.Fields{"error": err.Error()})
	}

	return r
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
