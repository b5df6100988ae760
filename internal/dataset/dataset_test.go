package dataset

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Test Helpers
// ---------------------------------------------------------------------------

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "departures.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ---------------------------------------------------------------------------
// Open Tests
// ---------------------------------------------------------------------------

func TestOpenDispatchesByExtension(t *testing.T) {
	src, err := Open("data/departures.csv", "")
	require.NoError(t, err)
	assert.IsType(t, &CSVSource{}, src)

	src, err = Open("data/departures.db", "")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSource{}, src)

	src, err = Open("data/departures.sqlite", "")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSource{}, src)

	_, err = Open("", "")
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// CSV Tests
// ---------------------------------------------------------------------------

func TestCSVLoad(t *testing.T) {
	path := writeCSV(t, `data_dte,usg_apt,fg_apt,carrier,carriergroup,type,Scheduled,Charter,Total
01/01/2024,JFK,LHR,DL,0,Departures,1,0,120
02/01/2024,LAX,NRT,UA,1,Departures,0,1,15
`)

	records, err := (&CSVSource{Path: path, DateFormat: DefaultDateFormat}).Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, "JFK", records[0].Origin)
	assert.Equal(t, "LHR", records[0].Destination)
	assert.Equal(t, "DL", records[0].Airline)
	assert.Equal(t, 0, records[0].CarrierGroup)
	assert.Equal(t, "Departures", records[0].FlightType)
	assert.True(t, records[0].Scheduled)
	assert.False(t, records[0].Charter)
	assert.Equal(t, 120.0, records[0].Total)

	assert.False(t, records[1].Scheduled)
	assert.True(t, records[1].Charter)
}

func TestCSVLoadHeaderOrderIndependent(t *testing.T) {
	path := writeCSV(t, `Total,carrier,data_dte,usg_apt,fg_apt,type,carriergroup,Charter,Scheduled
42,AA,03/15/2024,MIA,GRU,Departures,0,0,1
`)

	records, err := (&CSVSource{Path: path}).Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AA", records[0].Airline)
	assert.Equal(t, 42.0, records[0].Total)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestCSVLoadMissingColumn(t *testing.T) {
	path := writeCSV(t, `data_dte,usg_apt,fg_apt,carrier,type,Scheduled,Charter,Total
01/01/2024,JFK,LHR,DL,Departures,1,0,120
`)

	_, err := (&CSVSource{Path: path}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carriergroup")
}

func TestCSVLoadBadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad date", `13/45/2024,JFK,LHR,DL,0,Departures,1,0,120`, "parse date"},
		{"bad carrier group", `01/01/2024,JFK,LHR,DL,big,Departures,1,0,120`, "carrier group"},
		{"bad scheduled flag", `01/01/2024,JFK,LHR,DL,0,Departures,2,0,120`, "scheduled"},
		{"bad total", `01/01/2024,JFK,LHR,DL,0,Departures,1,0,lots`, "total"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCSV(t, "data_dte,usg_apt,fg_apt,carrier,carriergroup,type,Scheduled,Charter,Total\n"+tc.row+"\n")
			_, err := (&CSVSource{Path: path}).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCSVLoadMissingFile(t *testing.T) {
	_, err := (&CSVSource{Path: filepath.Join(t.TempDir(), "nope.csv")}).Load()
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// SQLite Tests
// ---------------------------------------------------------------------------

func TestSQLiteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "departures.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE flights (
		data_dte TEXT, usg_apt TEXT, fg_apt TEXT, carrier TEXT,
		carriergroup INTEGER, type TEXT, scheduled INTEGER, charter INTEGER, total REAL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO flights VALUES
		('2024-01-01','JFK','LHR','DL',0,'Departures',1,0,120),
		('2024-02-01','LAX','NRT','UA',1,'Departures',0,1,15)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	records, err := (&SQLiteSource{Path: path}).Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, "JFK", records[0].Origin)
	assert.True(t, records[0].Scheduled)
	assert.Equal(t, 15.0, records[1].Total)
	assert.True(t, records[1].Charter)
}

func TestSQLiteLoadBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "departures.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE flights (
		data_dte TEXT, usg_apt TEXT, fg_apt TEXT, carrier TEXT,
		carriergroup INTEGER, type TEXT, scheduled INTEGER, charter INTEGER, total REAL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO flights VALUES
		('not-a-date','JFK','LHR','DL',0,'Departures',1,0,120)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = (&SQLiteSource{Path: path}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse date")
}
