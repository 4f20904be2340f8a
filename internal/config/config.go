// Package config loads application configuration from environment variables.
// A .env file in the working directory is honored when present, so the
// planner can be pointed at a different database file without exporting
// anything. Every setting has a default; nothing is required.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. The planner is a local
// terminal program, so the only knobs are filesystem paths.
type Config struct {
	DBPath    string // path of the SQLite database file
	ExportDir string // directory CSV exports are written into
}

// Load reads configuration from the environment after attempting to load
// a .env file. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		DBPath:    getenv("PLANNER_DB_PATH", "vacation_planner.db"),
		ExportDir: getenv("PLANNER_EXPORT_DIR", "."),
	}
}

// getenv returns the environment variable's value, or fallback when it is
// unset or empty.
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
