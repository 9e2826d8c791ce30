// Package export writes generated datasets to files for downstream test
// suites: JSON record arrays, CSV with a header row, or tables in a single
// SQLite database file.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tipresias/candystore"
)

// Format is a supported output format.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatCSV, FormatSQLite:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, csv or sqlite)", name)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatSQLite:
		return "db"
	default:
		return string(f)
	}
}

// Result tracks the outcome of writing one dataset.
type Result struct {
	Dataset  string
	Rows     int
	Path     string
	Duration time.Duration
}

// Summary returns a human-readable summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("dataset=%s rows=%d path=%s dur=%s",
		r.Dataset, r.Rows, r.Path, r.Duration.Round(time.Millisecond))
}

// JSON writes the records as an indented JSON array.
func JSON(w io.Writer, records any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// CSV writes the table with a header row of column names.
func CSV(w io.Writer, table candystore.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, value := range row {
			record[i] = formatValue(value)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
