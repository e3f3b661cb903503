package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps each collection as one row of a key-value table in an
// embedded SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// The store serializes writes itself; a single connection avoids
	// SQLITE_BUSY on concurrent reads during a write.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Load(collection string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow(
		`SELECT data FROM collections WHERE name = ?`, collection,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}
	return data, nil
}

func (b *SQLiteBackend) Save(collection string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO collections (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		collection, data)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
