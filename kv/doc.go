/*
Package kv is the persistent state store backing the voting contract.

# Model

The store is a flat key-value map split into two scopes:

  - Instance: small, frequently read configuration (admin, active flag,
    total vote counter)
  - Archival: the growing per-option, per-voter, and per-vote data

Keys are (scope, name) pairs; values are opaque bytes (the contract stores
JSON). The contract package owns the key space; this package only moves
bytes.

# Atomicity

Every contract operation stages its writes in a Batch and commits with one
Apply call. Apply is all-or-nothing in every backend, which is what makes a
failed vote leave zero state behind:

	batch := kv.NewBatch()
	batch.Set(key, value)
	err := store.Apply(batch)

Batch.Get lets an operation read its own staged writes before commit.

# Backends

  - MemoryStore: in-process map, used by tests and the "memory" database type
  - LevelDBStore: embedded LevelDB (github.com/syndtr/goleveldb), the
    default; Apply maps to a synced WriteBatch
  - SQLStore: database/sql over PostgreSQL (lib/pq) or SQLite
    (modernc.org/sqlite); Apply maps to a transaction

Backend selection happens in the db package based on configuration.
*/
package kv
