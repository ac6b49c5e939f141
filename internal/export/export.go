package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rbenhaddou/squad-roster/internal/roster"
)

// DefaultCSVFilename is used when no output path is given.
const DefaultCSVFilename = "morocco_football_team.csv"

// WriteCSV writes a roster as UTF-8 comma-delimited text: one header row of
// canonical column names, one line per player, no index column. Missing
// numeric values become empty cells.
func WriteCSV(w io.Writer, r *roster.Roster) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(r.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(r.Columns))
	for _, p := range r.Players {
		for i, column := range r.Columns {
			record[i] = formatValue(p.Value(column))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes a roster as a JSON array of objects, one per player.
// Field names match the CSV header; missing values are null.
func WriteJSON(w io.Writer, r *roster.Roster) error {
	records := make([]map[string]interface{}, 0, len(r.Players))
	for _, p := range r.Players {
		record := make(map[string]interface{}, len(r.Columns))
		for _, column := range r.Columns {
			record[column] = p.Value(column)
		}
		records = append(records, record)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// SaveCSV writes the roster to a CSV file at path, creating or truncating it.
func SaveCSV(path string, r *roster.Roster) error {
	return saveFile(path, r, WriteCSV)
}

// SaveJSON writes the roster to a JSON file at path, creating or truncating it.
func SaveJSON(path string, r *roster.Roster) error {
	return saveFile(path, r, WriteJSON)
}

func saveFile(path string, r *roster.Roster, write func(io.Writer, *roster.Roster) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
