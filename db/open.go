package db

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"fundvote/cliparse"
	"fundvote/kv"
)

// Open creates the contract state store for the configured backend.
func Open(cfg cliparse.Config) (kv.Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DBMemory:
		return kv.NewMemoryStore(), nil

	case cliparse.DBLevelDB:
		return kv.NewLevelDBStore(filepath.Join(cfg.DataDir, "contract"))

	case cliparse.DBSQLite:
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("sqlite open failed: %w", err)
		}
		return newSQLStore(conn)

	case cliparse.DBPostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres open failed: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("postgres ping failed: %w", err)
		}
		return newSQLStore(conn)

	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
}

func newSQLStore(conn *sql.DB) (kv.Store, error) {
	store, err := kv.NewSQLStore(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return store, nil
}
