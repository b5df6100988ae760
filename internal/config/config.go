// Package config resolves runtime defaults from the environment. A .env
// file in the working directory is honored when present; flags set on the
// command line override anything loaded here.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mohaimenhasan/flight-delay/internal/dataset"
)

// Config holds the resolved defaults.
type Config struct {
	// DataPath is the flight-record dataset to load.
	DataPath string
	// DateFormat is the Go layout of the CSV date column.
	DateFormat string
}

const defaultDataPath = "data/International_Report_Departures.csv"

// Load reads the environment, after a best-effort .env load. A missing
// .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataPath:   getEnv("FLIGHTCAST_DATA", defaultDataPath),
		DateFormat: getEnv("FLIGHTCAST_DATE_FORMAT", dataset.DefaultDateFormat),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
