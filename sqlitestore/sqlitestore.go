// Package sqlitestore persists the finance state in a single-file SQLite
// database instead of a plain JSON file. The whole serialized state lives in
// one key-value row, so the database stays a drop-in Storage backend rather
// than a relational schema.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	finance "github.com/AdryannSanntos/controle-financeiro"
)

const schema = `
CREATE TABLE IF NOT EXISTS state (
	name TEXT PRIMARY KEY,
	data BLOB NOT NULL
);`

// Storage implements finance.Storage over a SQLite database file.
type Storage struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the state row. Absence is not an error.
func (s *Storage) Load() (*finance.State, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM state WHERE name = ?`, finance.StorageName).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read state row: %w", err)
	}

	var state finance.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, fmt.Errorf("decode state row: %w", err)
	}
	return &state, true, nil
}

// Save upserts the state row.
func (s *Storage) Save(state *finance.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO state (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		finance.StorageName, data)
	if err != nil {
		return fmt.Errorf("write state row: %w", err)
	}
	return nil
}

var _ finance.Storage = (*Storage)(nil)
