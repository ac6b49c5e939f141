package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rbenhaddou/squad-roster/internal/roster"
)

// DefaultTTL bounds how long a cached roster is served before a refetch.
const DefaultTTL = 15 * time.Minute

const snapshotFile = "roster.json"

// Cache persists the last successful roster as a JSON snapshot so that
// repeated invocations within the TTL window skip the network fetch.
// Single writer; a snapshot is replaced wholesale, never merged.
type Cache struct {
	dataDir string
	ttl     time.Duration
}

// snapshot is the on-disk envelope around a cached roster.
type snapshot struct {
	Roster  *roster.Roster `json:"roster"`
	SavedAt time.Time      `json:"saved_at"`
}

// New creates a Cache rooted at dataDir, creating the directory if needed.
// A ttl of zero falls back to DefaultTTL.
func New(dataDir string, ttl time.Duration) (*Cache, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		dataDir: dataDir,
		ttl:     ttl,
	}, nil
}

// Load returns the cached roster, or nil if there is none or the snapshot
// has expired. A missing snapshot is not an error.
func (c *Cache) Load() (*roster.Roster, error) {
	path := filepath.Join(c.dataDir, snapshotFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snap.Roster == nil || time.Since(snap.SavedAt) > c.ttl {
		return nil, nil
	}

	return snap.Roster, nil
}

// Save replaces the snapshot with the given roster.
func (c *Cache) Save(r *roster.Roster) error {
	path := filepath.Join(c.dataDir, snapshotFile)

	data, err := json.MarshalIndent(snapshot{Roster: r, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}
