package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// locateStrategy is one heuristic for finding the roster table in a parsed
// document. Strategies are pure functions over the document and return nil
// when they match nothing.
type locateStrategy func(*goquery.Document) *goquery.Selection

// locateStrategies are tried in order; the first non-nil result wins.
var locateStrategies = []locateStrategy{
	locateByHeading,
	locateByKeywords,
}

// tableKeywords must appear (case-insensitive) somewhere in a candidate
// table's text for the keyword fallback to consider it.
var tableKeywords = []string{"gk", "df", "mf", "fw", "caps", "goals"}

// headerKeywords must appear among a candidate's first-row cell labels.
var headerKeywords = []string{"No.", "Pos.", "Player", "Caps", "Goals"}

func locate(doc *goquery.Document) *goquery.Selection {
	for _, strategy := range locateStrategies {
		if table := strategy(doc); table != nil {
			return table
		}
	}
	return nil
}

// locateByHeading finds the first h2-h4 heading whose text contains
// "player" and walks its following siblings until a table appears. Only the
// first matching heading is considered, even if no table follows it.
func locateByHeading(doc *goquery.Document) *goquery.Selection {
	var table *goquery.Selection

	doc.Find("h2, h3, h4").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(heading.Text()))
		if !strings.Contains(text, "player") {
			return true
		}

		for sibling := heading.Next(); sibling.Length() > 0; sibling = sibling.Next() {
			if goquery.NodeName(sibling) == "table" {
				table = sibling
				break
			}
		}
		return false
	})

	return table
}

// locateByKeywords scans every table in document order and picks the first
// whose full text mentions a position or stat keyword and whose first-row
// cells carry at least one expected header label.
func locateByKeywords(doc *goquery.Document) *goquery.Selection {
	var table *goquery.Selection

	doc.Find("table").EachWithBreak(func(_ int, candidate *goquery.Selection) bool {
		text := strings.ToLower(candidate.Text())
		if !containsAny(text, tableKeywords) {
			return true
		}

		labels := make([]string, 0, 8)
		candidate.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			labels = append(labels, cellText(cell))
		})
		if !containsAny(strings.Join(labels, "|"), headerKeywords) {
			return true
		}

		table = candidate
		return false
	})

	return table
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
