// Package scraper provides HTTP fetching and HTML table extraction for squad rosters.
//
// The scraper package fetches a public squad page and locates the roster table
// using an ordered list of heuristics: heading proximity first (a "Players"
// style heading followed by a table), then a keyword fallback over every table
// in the document. Extraction canonicalizes header labels, skips structural
// filler rows, and strips footnote markers and age annotations from cells.
package scraper
