package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

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
		{"7", "FW", "Hakim Ziyech", "19 March 1993", "84", "25", "Galatasaray"},
		{"-", "MF", "Trialist", "unknown", "-", "-", "Free agent"},
	}

	r, err := roster.Assemble(headers, rows)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return r
}

func TestWriteCSVRoundTrip(t *testing.T) {
	r := testRoster(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parsing CSV failed: %v", err)
	}

	if len(records) != len(r.Players)+1 {
		t.Fatalf("expected %d records, got %d", len(r.Players)+1, len(records))
	}

	// Index columns by name and compare every field against the roster.
	columnIndex := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columnIndex[name] = i
	}
	for _, column := range r.Columns {
		if _, ok := columnIndex[column]; !ok {
			t.Fatalf("column %s missing from CSV header %v", column, records[0])
		}
	}

	for i, p := range r.Players {
		record := records[i+1]

		if got := record[columnIndex[roster.FieldPlayer]]; got != p.Name {
			t.Errorf("row %d: name = %q, expected %q", i, got, p.Name)
		}
		if got := record[columnIndex[roster.FieldClub]]; got != p.Club {
			t.Errorf("row %d: club = %q, expected %q", i, got, p.Club)
		}

		capsText := record[columnIndex[roster.FieldCaps]]
		if p.Caps == nil {
			if capsText != "" {
				t.Errorf("row %d: expected empty caps cell, got %q", i, capsText)
			}
		} else if n, err := strconv.Atoi(capsText); err != nil || n != *p.Caps {
			t.Errorf("row %d: caps = %q, expected %d", i, capsText, *p.Caps)
		}

		ratioText := record[columnIndex[roster.FieldGoalRatio]]
		ratio, err := strconv.ParseFloat(ratioText, 64)
		if err != nil || ratio != p.GoalRatio {
			t.Errorf("row %d: goal ratio = %q, expected %v", i, ratioText, p.GoalRatio)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	r := testRoster(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("re-parsing JSON failed: %v", err)
	}

	if len(records) != len(r.Players) {
		t.Fatalf("expected %d records, got %d", len(r.Players), len(records))
	}

	first := records[0]
	if first[roster.FieldPlayer] != "Yassine Bounou" {
		t.Errorf("expected player name, got %v", first[roster.FieldPlayer])
	}
	if first[roster.FieldCaps] != float64(55) {
		t.Errorf("expected numeric caps 55, got %v", first[roster.FieldCaps])
	}

	// The trialist has no parseable numbers; those fields must be null.
	trialist := records[2]
	if v, ok := trialist[roster.FieldCaps]; !ok || v != nil {
		t.Errorf("expected null caps for trialist, got %v", v)
	}
	if v := trialist[roster.FieldGoalRatio]; v != float64(0) {
		t.Errorf("expected goal ratio 0 for trialist, got %v", v)
	}
}

func TestSaveCSV(t *testing.T) {
	r := testRoster(t)
	path := filepath.Join(t.TempDir(), "squad.csv")

	if err := SaveCSV(path, r); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("saved CSV is empty")
	}
}

func TestSaveJSON(t *testing.T) {
	r := testRoster(t)
	path := filepath.Join(t.TempDir(), "squad.json")

	if err := SaveJSON(path, r); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		t.Errorf("saved JSON does not parse: %v", err)
	}
}
