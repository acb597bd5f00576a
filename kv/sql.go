package kv

import (
	"database/sql"
	"fmt"
)

// SQLStore persists contract state in a relational database through
// database/sql. The same statements run on both supported drivers
// (lib/pq and modernc.org/sqlite): $1 placeholders and
// INSERT ... ON CONFLICT upserts are understood by each.
type SQLStore struct {
	db *sql.DB
}

const sqlSchema = `
CREATE TABLE IF NOT EXISTS contract_state (
    scope TEXT NOT NULL,
    k TEXT NOT NULL,
    v TEXT NOT NULL,
    PRIMARY KEY (scope, k)
);
`

// NewSQLStore wraps an open database handle, creating the state table if
// needed. The store takes ownership of db and closes it on Close.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(sqlSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(key Key) ([]byte, bool, error) {
	var v string
	err := s.db.QueryRow(`
		SELECT v FROM contract_state WHERE scope = $1 AND k = $2
	`, key.Scope.String(), key.Name).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sql get %s/%s: %w", key.Scope, key.Name, err)
	}
	return []byte(v), true, nil
}

func (s *SQLStore) Apply(batch *Batch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sql begin: %w", err)
	}
	defer tx.Rollback()

	for _, e := range batch.Entries() {
		_, err := tx.Exec(`
			INSERT INTO contract_state (scope, k, v)
			VALUES ($1, $2, $3)
			ON CONFLICT (scope, k) DO UPDATE SET v = EXCLUDED.v
		`, e.Key.Scope.String(), e.Key.Name, string(e.Value))
		if err != nil {
			return fmt.Errorf("sql set %s/%s: %w", e.Key.Scope, e.Key.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sql commit: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
