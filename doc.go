/*
Package main provides the entry point for the FundVote API server.

FundVote is a funding-vote service: a single admin configures a set of
votable options, each with a fund recipient, and distinct voters cast
exactly one vote each. A vote carries a token amount that moves atomically
to the chosen option's recipient when the vote commits.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	AUTH_TOKEN_SALT=... go run .

Or with flags:

	go run . -p 3419 -t leveldb -data-dir ./data -auth-salt ...

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - AUTH_TOKEN_SALT (-auth-salt): Secret for address auth token HMAC
  - DATABASE_URL (-d): required for the sqlite and postgres backends

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_TYPE (-t): memory, leveldb, sqlite, or postgres (default: leveldb)
  - DATA_DIR (-data-dir): LevelDB directory (default: ./data)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - contract: the voting state machine (the core)
  - kv: two-scope persistent key-value store with atomic batch commit
  - db: storage backend selection
  - ledger: fund transfer service (in-process token ledger in dev)
  - events: vote event emission
  - auth: address token generation and validation
  - handlers: HTTP request handlers (admin, voting, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error mapping
  - models: domain and request/response types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
