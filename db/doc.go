/*
Package db selects and opens the contract state store.

# Backends

Open maps the configured database type to a kv.Store:

	store, err := db.Open(cfg)
	defer store.Close()

  - memory: in-process map, state lost on exit (dev and tests)
  - leveldb: embedded LevelDB under DataDir (the default)
  - sqlite: modernc.org/sqlite at the DATABASE_URL path
  - postgres: lib/pq against the DATABASE_URL connection string

The sqlite and postgres backends share one SQL store; only the driver
differs. Schema creation is idempotent and happens on open.
*/
package db
