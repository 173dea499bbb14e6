package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// startupPragmas puts the database into WAL mode so readers never block on a
// writer, and gives writers a busy timeout instead of surfacing SQLITE_BUSY
// to the store layer. Foreign keys are off by default in SQLite and must be
// switched on per connection.
var startupPragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
	"PRAGMA synchronous=NORMAL",
}

// Open opens a SQLite database at path and applies the startup pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}

	for _, p := range startupPragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", p, err)
		}
	}

	return db, nil
}
