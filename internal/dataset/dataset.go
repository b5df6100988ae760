// Package dataset loads historical flight-record tables. Two sources are
// supported: the International Report departures CSV layout, and the same
// records in a SQLite table for datasets already converted from CSV.
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// DefaultDateFormat is the date layout of the report CSV (MM/DD/YYYY).
const DefaultDateFormat = "01/02/2006"

// Source loads a flight-record table into memory.
type Source interface {
	Load() ([]models.FlightRecord, error)
}

// Open selects a source by file extension: .db/.sqlite/.sqlite3 open the
// SQLite source, everything else is read as CSV. dateFormat applies to the
// CSV date column; an empty format means DefaultDateFormat.
func Open(path, dateFormat string) (Source, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset path is empty")
	}
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return &SQLiteSource{Path: path}, nil
	default:
		return &CSVSource{Path: path, DateFormat: dateFormat}, nil
	}
}
