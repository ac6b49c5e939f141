package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rbenhaddou/squad-roster/internal/roster"
)

const (
	// DefaultRosterURL is the page scraped when no URL is configured.
	DefaultRosterURL = "https://en.wikipedia.org/wiki/Morocco_national_football_team"
	// UserAgent is browser-like because the source rejects unidentified clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	Timeout   = 30 * time.Second
)

// ErrNoTable indicates that neither locate strategy matched a table.
var ErrNoTable = errors.New("no roster table found in document")

// DefaultHeaders is the label sequence assumed when the located table has no
// header row at all.
var DefaultHeaders = []string{
	roster.FieldNumber,
	roster.FieldPosition,
	roster.FieldPlayer,
	roster.FieldBirthDate,
	roster.FieldCaps,
	roster.FieldGoals,
	roster.FieldClub,
}

// Table is the raw extraction result: canonical header labels plus cleaned
// row cells, trimmed or padded to the header count.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Scraper fetches a squad page and extracts its roster table
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given page URL, falling back to
// DefaultRosterURL when url is empty.
func New(url string) *Scraper {
	if url == "" {
		url = DefaultRosterURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the page this scraper targets.
func (s *Scraper) URL() string {
	return s.url
}

// Fetch retrieves the page and extracts the roster table. Network, status
// and parse failures come back as wrapped errors; a page with no matching
// table yields ErrNoTable.
func (s *Scraper) Fetch() (*Table, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseTable(resp.Body)
}

// parseTable locates the roster table in an HTML document and extracts
// headers and rows from it.
func (s *Scraper) parseTable(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := locate(doc)
	if table == nil {
		return nil, ErrNoTable
	}

	return extract(table), nil
}

var (
	footnotePattern = regexp.MustCompile(`\[.*?\]`)
	agePattern      = regexp.MustCompile(`\(age.*?\)`)
	parensPattern   = regexp.MustCompile(`[()]`)
)

// extract pulls header labels and data rows out of the located table.
func extract(table *goquery.Selection) *Table {
	allRows := table.Find("tr")

	headers := DefaultHeaders
	hasHeaderRow := allRows.Length() > 0
	if hasHeaderRow {
		headers = headerLabels(allRows.First())
	}

	rows := make([][]string, 0, allRows.Length())
	allRows.Each(func(i int, row *goquery.Selection) {
		if hasHeaderRow && i == 0 {
			return
		}
		// Structural markers for totals rows and placeholder rows; content
		// is not inspected.
		if row.HasClass("sortbottom") || row.HasClass("mw-empty-elt") {
			return
		}

		cells := row.Find("td, th")
		if cells.Length() < 4 {
			return
		}

		values := make([]string, 0, cells.Length())
		cells.Each(func(j int, cell *goquery.Selection) {
			values = append(values, cleanCell(j, cellText(cell)))
		})

		for len(values) < len(headers) {
			values = append(values, "")
		}
		rows = append(rows, values[:len(headers)])
	})

	return &Table{Headers: headers, Rows: rows}
}

// headerLabels reads the header row's cells and canonicalizes each label.
func headerLabels(row *goquery.Selection) []string {
	labels := make([]string, 0, 8)
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		labels = append(labels, canonicalLabel(cellText(cell)))
	})
	if len(labels) == 0 {
		return DefaultHeaders
	}
	return labels
}

// canonicalLabel maps a raw header label to its canonical column name.
// Unrecognized labels pass through verbatim.
func canonicalLabel(text string) string {
	switch {
	case text == "No.":
		return roster.FieldNumber
	case text == "Pos.":
		return roster.FieldPosition
	case text == "Player":
		return roster.FieldPlayer
	case strings.Contains(text, "Date of birth") || strings.Contains(text, "Birth"):
		return roster.FieldBirthDate
	case text == "Caps":
		return roster.FieldCaps
	case text == "Goals":
		return roster.FieldGoals
	case text == "Club":
		return roster.FieldClub
	default:
		return text
	}
}

// cleanCell strips source-document noise by cell position: footnote markers
// from the number (0) and name (2) columns, the age annotation and stray
// parentheses from the birth-date column (3). Positional on purpose: the
// source table's column order is assumed fixed, and a reordered table would
// silently clean the wrong columns.
func cleanCell(index int, text string) string {
	switch index {
	case 0, 2:
		return strings.TrimSpace(footnotePattern.ReplaceAllString(text, ""))
	case 3:
		text = agePattern.ReplaceAllString(text, "")
		return strings.TrimSpace(parensPattern.ReplaceAllString(text, ""))
	default:
		return text
	}
}

// cellText extracts a cell's text with inner whitespace collapsed, so that
// icons and nested links do not glue words together.
func cellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(cell.Text()), " ")
}
