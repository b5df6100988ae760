package dataset

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mohaimenhasan/flight-delay/pkg/models"
)

// SQLiteSource reads flight records from a `flights` table, the layout
// produced when the report CSV is converted to SQLite. Dates are stored as
// ISO text (YYYY-MM-DD).
type SQLiteSource struct {
	Path string
}

const sqliteDateFormat = "2006-01-02"

const selectFlights = `
	SELECT data_dte, usg_apt, fg_apt, carrier, carriergroup, type, scheduled, charter, total
	FROM flights`

// Load reads the whole table into memory.
func (s *SQLiteSource) Load() ([]models.FlightRecord, error) {
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(selectFlights)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	var records []models.FlightRecord
	for rows.Next() {
		var (
			rec                models.FlightRecord
			date               string
			scheduled, charter int
		)
		if err := rows.Scan(&date, &rec.Origin, &rec.Destination, &rec.Airline,
			&rec.CarrierGroup, &rec.FlightType, &scheduled, &charter, &rec.Total); err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}

		rec.Date, err = time.ParseInLocation(sqliteDateFormat, date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		rec.Scheduled = scheduled != 0
		rec.Charter = charter != 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read flights: %w", err)
	}
	return records, nil
}
