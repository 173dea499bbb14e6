package db

import (
	"database/sql"
	"testing"
)

// NewTestDB returns a fresh in-memory SQLite database, fully migrated, that
// is closed when the test finishes. Tests get the same schema the binary
// runs with, including migration backfills.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}
