package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseType  string
	DatabaseURL   string
	DataDir       string
	AuthTokenSalt string
}

// Database type values accepted by -t / DATABASE_TYPE.
const (
	DBMemory   = "memory"
	DBLevelDB  = "leveldb"
	DBSQLite   = "sqlite"
	DBPostgres = "postgres"
)

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("fundvote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (memory, leveldb, sqlite, postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres connection string)")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Data directory for the leveldb backend")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AuthTokenSalt, "auth-salt", "", "Auth token salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3419 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DBLevelDB
		}
	}
	switch cfg.DatabaseType {
	case DBMemory, DBLevelDB, DBSQLite, DBPostgres:
	default:
		return Config{}, errors.New("unknown database type: " + cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && (cfg.DatabaseType == DBSQLite || cfg.DatabaseType == DBPostgres) {
		return Config{}, errors.New("database URL required for " + cfg.DatabaseType + " (use -d or DATABASE_URL env)")
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = "./data"
		}
	}

	// Secrets - MUST be provided
	if cfg.AuthTokenSalt == "" {
		cfg.AuthTokenSalt = os.Getenv("AUTH_TOKEN_SALT")
	}
	if cfg.AuthTokenSalt == "" {
		return Config{}, errors.New("AUTH_TOKEN_SALT required")
	}

	return cfg, nil
}
