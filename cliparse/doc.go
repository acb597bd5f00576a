/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3419)
  - DatabaseType: Storage backend — memory, leveldb, sqlite, postgres
    (default: leveldb)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required for
    the sqlite and postgres backends)
  - DataDir: Data directory for the leveldb backend (default: ./data)
  - AuthTokenSalt: Secret for address token HMAC (required)

# CLI Flags

	-p          Server port
	-t          Database type
	-d          Database URL
	-data-dir   LevelDB data directory
	-auth-salt  Auth token salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_TYPE   → -t
	DATABASE_URL    → -d
	DATA_DIR        → -data-dir
	AUTH_TOKEN_SALT → -auth-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - AUTH_TOKEN_SALT must be provided
  - DATABASE_URL must be provided when the backend is sqlite or postgres
  - DATABASE_TYPE must be one of the known backends
*/
package cliparse
