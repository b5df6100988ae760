package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// CSVSource reads the International Report departures CSV. Columns are
// addressed by header name, case-insensitively, so column order in the
// file does not matter.
type CSVSource struct {
	Path       string
	DateFormat string
}

// Column names as published in the report.
const (
	colDate         = "data_dte"
	colOrigin       = "usg_apt"
	colDestination  = "fg_apt"
	colAirline      = "carrier"
	colCarrierGroup = "carriergroup"
	colFlightType   = "type"
	colScheduled    = "scheduled"
	colCharter      = "charter"
	colTotal        = "total"
)

var requiredColumns = []string{
	colDate, colOrigin, colDestination, colAirline,
	colCarrierGroup, colFlightType, colScheduled, colCharter, colTotal,
}

// Load reads every row and returns the parsed records. A row that fails to
// parse fails the whole load with its line number; there is no partial
// result.
func (s *CSVSource) Load() ([]models.FlightRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	format := s.DateFormat
	if format == "" {
		format = DefaultDateFormat
	}

	var records []models.FlightRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := parseRow(row, cols, format)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// indexColumns maps the required column names to their positions.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", name)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int, dateFormat string) (models.FlightRecord, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[cols[name]])
	}

	date, err := time.ParseInLocation(dateFormat, field(colDate), time.UTC)
	if err != nil {
		return models.FlightRecord{}, fmt.Errorf("parse date %q: %w", field(colDate), err)
	}

	group, err := strconv.Atoi(field(colCarrierGroup))
	if err != nil {
		return models.FlightRecord{}, fmt.Errorf("parse carrier group %q: %w", field(colCarrierGroup), err)
	}

	scheduled, err := parseBit(field(colScheduled))
	if err != nil {
		return models.FlightRecord{}, fmt.Errorf("parse scheduled flag: %w", err)
	}
	charter, err := parseBit(field(colCharter))
	if err != nil {
		return models.FlightRecord{}, fmt.Errorf("parse charter flag: %w", err)
	}

	total, err := strconv.ParseFloat(field(colTotal), 64)
	if err != nil {
		return models.FlightRecord{}, fmt.Errorf("parse total %q: %w", field(colTotal), err)
	}

	return models.FlightRecord{
		Date:         date,
		Origin:       field(colOrigin),
		Destination:  field(colDestination),
		Airline:      field(colAirline),
		CarrierGroup: group,
		FlightType:   field(colFlightType),
		Scheduled:    scheduled,
		Charter:      charter,
		Total:        total,
	}, nil
}

// parseBit accepts the dataset's 0/1 flag encoding.
func parseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("value %q is not 0 or 1", s)
	}
}
