// Package database opens the SQLite file backing the planner and creates
// the schema. Everything the application stores lives in this one file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if necessary) the SQLite database at path and
// verifies the connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// SQLite permits one writer; a single pooled connection avoids
	// SQLITE_BUSY between statements.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Schema DDL. Dates and timestamps are stored as TEXT, money as NUMERIC so
// decimal values round-trip as written.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    username TEXT UNIQUE,
    password TEXT,
    secret_keyword TEXT
);`

	createTrips = `CREATE TABLE IF NOT EXISTS trips (
    id INTEGER PRIMARY KEY,
    user_id INTEGER,
    destination TEXT,
    start_date TEXT,
    end_date TEXT,
    budget NUMERIC,
    status TEXT DEFAULT 'planned',
    notes TEXT,
    created_at TEXT,
    updated_at TEXT,
    FOREIGN KEY (user_id) REFERENCES users(id)
);`

	createTransport = `CREATE TABLE IF NOT EXISTS transport (
    id INTEGER PRIMARY KEY,
    trip_id INTEGER,
    mode TEXT,
    cost NUMERIC,
    FOREIGN KEY (trip_id) REFERENCES trips(id)
);`

	createAccommodation = `CREATE TABLE IF NOT EXISTS accommodation (
    id INTEGER PRIMARY KEY,
    trip_id INTEGER,
    name TEXT,
    cost NUMERIC,
    FOREIGN KEY (trip_id) REFERENCES trips(id)
);`

	createActivities = `CREATE TABLE IF NOT EXISTS activities (
    id INTEGER PRIMARY KEY,
    trip_id INTEGER,
    name TEXT,
    cost NUMERIC,
    FOREIGN KEY (trip_id) REFERENCES trips(id)
);`

	createExpenses = `CREATE TABLE IF NOT EXISTS expenses (
    id INTEGER PRIMARY KEY,
    trip_id INTEGER,
    category TEXT,
    amount NUMERIC,
    FOREIGN KEY (trip_id) REFERENCES trips(id)
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createTrips,
	createTransport,
	createAccommodation,
	createActivities,
	createExpenses,
}

// EnsureSchema creates all tables. Every statement uses IF NOT EXISTS, so
// running it against an already-initialized file is a no-op. A failure here
// is fatal to startup; the caller must not proceed.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
