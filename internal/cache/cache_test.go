package cache

import (
	"testing"
	"time"

	"github.com/rbenhaddou/squad-roster/internal/roster"
)

func testRoster(t *testing.T) *roster.Roster {
	t.Helper()

	headers := []string{
		roster.FieldNumber, roster.FieldPosition, roster.FieldPlayer,
		roster.FieldBirthDate, roster.FieldCaps, roster.FieldGoals, roster.FieldClub,
	}
	rows := [][]string{
		{"1", "GK", "Yassine Bounou", "5 April 1991", "55", "0", "Sevilla"},
	}

	r, err := roster.Assemble(headers, rows)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return r
}

func TestSaveAndLoad(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := c.Save(testRoster(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := c.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a cached roster, got nil")
	}
	if len(loaded.Players) != 1 {
		t.Errorf("expected 1 player, got %d", len(loaded.Players))
	}
	if loaded.Players[0].Name != "Yassine Bounou" {
		t.Errorf("expected player name to survive round trip, got %q", loaded.Players[0].Name)
	}
	if loaded.Players[0].Caps == nil || *loaded.Players[0].Caps != 55 {
		t.Errorf("expected caps 55 after round trip, got %v", loaded.Players[0].Caps)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	loaded, err := c.Load()
	if err != nil {
		t.Errorf("a missing snapshot should not be an error, got %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil roster for a missing snapshot, got %+v", loaded)
	}
}

func TestLoadExpiredSnapshot(t *testing.T) {
	dir := t.TempDir()

	c, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := c.Save(testRoster(t)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Reopen with a TTL that has already elapsed.
	expired, err := New(dir, time.Nanosecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	time.Sleep(time.Millisecond)

	loaded, err := expired.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != nil {
		t.Error("expected an expired snapshot to read as a miss")
	}
}

func TestNewDefaultTTL(t *testing.T) {
	c, err := New(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.ttl != DefaultTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultTTL, c.ttl)
	}
}
