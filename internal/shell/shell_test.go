package shell_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avinash949367/terminal-vacation-planner/internal/database"
	"github.com/Avinash949367/terminal-vacation-planner/internal/shell"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}

// runSession feeds the lines to a fresh shell over db and returns
// everything it printed. The session may end by menu choice or by EOF.
func runSession(t *testing.T, db *sql.DB, exportDir string, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := shell.New(db, exportDir, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestFullPlanningSession(t *testing.T) {
	db := openTestDB(t)
	dir := t.TempDir()

	out := runSession(t, db, dir,
		"1", "alice", "pw1", "dog", // register
		"2", "alice", "pw1", // login
		"1", "Paris", "2024-01-01", "2024-01-10", "1000", "Honeymoon", // add trip
		"5", "a", "1", "Plane", "200", // add transport
		"6", "a", "1", "Hotel", "300", // add accommodation
		"9", "a", // budget vs spent
		"10", "trips", // export
		"11", // logout
		"4", // exit
	)

	assert.Contains(t, out, "User registered successfully.")
	assert.Contains(t, out, "Logged in as user 1")
	assert.Contains(t, out, "Trip added.")
	assert.Contains(t, out, "Transport added.")
	assert.Contains(t, out, "Accommodation added.")
	assert.Contains(t, out, "Trip Paris: Budget 1000, Spent 500, Difference 500")
	assert.Contains(t, out, "Exported to trips.csv")

	f, err := os.Open(filepath.Join(dir, "trips.csv"))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"ID", "UserID", "Destination", "Start", "End",
		"Budget", "Status", "Notes", "Created", "Updated"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Paris", records[1][2])
	assert.Equal(t, "1000", records[1][5])
	assert.Equal(t, "planned", records[1][6])
	assert.Equal(t, "Honeymoon", records[1][7])
}

func TestInvalidMenuChoicesReprompt(t *testing.T) {
	db := openTestDB(t)

	out := runSession(t, db, t.TempDir(),
		"99", // bad top-level choice
		"1", "alice", "pw1", "dog",
		"2", "alice", "pw1",
		"42",     // bad authenticated choice
		"5", "z", // bad subchoice
		"11",
		"4",
	)
	assert.Contains(t, out, "Invalid choice.")
	assert.Contains(t, out, "Invalid.")
}

func TestMalformedNumbersAbortAction(t *testing.T) {
	db := openTestDB(t)

	out := runSession(t, db, t.TempDir(),
		"1", "alice", "pw1", "dog",
		"2", "alice", "pw1",
		"1", "Paris", "2024-01-01", "2024-01-10", "not-a-number", // bad budget
		"3", "not-an-id", // bad trip id
		"2", // trips list is still empty
		"11",
		"4",
	)
	assert.Contains(t, out, "Invalid number.")
	assert.Contains(t, out, "No trips found.")
}

func TestLoginFailureStaysAnonymous(t *testing.T) {
	db := openTestDB(t)

	out := runSession(t, db, t.TempDir(),
		"1", "alice", "pw1", "dog",
		"2", "alice", "wrong",
		"4",
	)
	assert.Contains(t, out, "Invalid credentials.")
	assert.NotContains(t, out, "Logged in as")
}

func TestForeignTripMessages(t *testing.T) {
	db := openTestDB(t)
	dir := t.TempDir()

	// alice owns trip 1.
	runSession(t, db, dir,
		"1", "alice", "pw1", "dog",
		"2", "alice", "pw1",
		"1", "Paris", "2024-01-01", "2024-01-10", "1000", "",
		"11",
		"4",
	)

	out := runSession(t, db, dir,
		"1", "bob", "pw2", "cat",
		"2", "bob", "pw2",
		"3", "1", "", "", "", "", "", // edit alice's trip
		"4", "1", // delete alice's trip
		"5", "b", "1", // view alice's transport
		"11",
		"4",
	)
	assert.Contains(t, out, "Trip not found or not yours.")
	assert.Contains(t, out, "Trip not found.")
	assert.Contains(t, out, "Invalid trip.")
}
