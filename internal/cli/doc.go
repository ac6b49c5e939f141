// Package cli implements the command-line interface for squad-roster.
//
// The cli package provides the Cobra-based CLI that runs the fetch pipeline,
// formats the summary (text/JSON), and exports CSV/JSON files. It coordinates
// the scraper, roster, cache, and export packages; every pipeline failure is
// logged with its cause and collapsed to a single "Roster not found." message.
package cli
