// Package databasetest provides an in-memory SQLite database carrying the
// same tables as the Postgres migrations, for repository and handler tests.
package databasetest

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"swapi-server/internal/shared/database"

	_ "github.com/mattn/go-sqlite3"
)

// Schema mirrors migrations/ using SQLite column types.
var Schema = fstest.MapFS{
	"001_create_planets.sql": &fstest.MapFile{Data: []byte(`
		CREATE TABLE planets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			climate TEXT NOT NULL DEFAULT '',
			terrain TEXT NOT NULL DEFAULT '',
			population TEXT NOT NULL DEFAULT '',
			created TEXT NOT NULL
		);`)},
	"002_create_people.sql": &fstest.MapFile{Data: []byte(`
		CREATE TABLE people (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			homeworld_id INTEGER NOT NULL REFERENCES planets(id),
			height INTEGER NOT NULL,
			mass INTEGER NOT NULL,
			hair_color TEXT NOT NULL,
			created TEXT NOT NULL
		);
		CREATE INDEX idx_people_homeworld_id ON people(homeworld_id);`)},
}

// New returns a migrated in-memory database closed at the end of the test.
func New(t testing.TB) *database.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	db := &database.DB{DB: sqlDB}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.RunMigrations(context.Background(), Schema); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}

	return db
}
