// Package cache provides JSON-based persistence for the last fetched roster.
//
// Snapshots are stored as a single roster.json file under the data directory
// (default ~/.local/share/squad-roster) and honored only within a TTL window;
// an expired or missing snapshot reads as a cache miss, never as an error.
package cache
