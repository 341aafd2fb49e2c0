package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config selects and parameterizes the database backend.
type Config struct {
	// Driver picks the backend explicitly. Empty or "auto" detects it
	// from URL.
	Driver Driver

	// URL is the Postgres connection string.
	URL string

	// SQLitePath is the database file for local mode. Defaults to
	// ~/.talentscope/data.db.
	SQLitePath string

	// MaxConns caps the Postgres pool size.
	MaxConns int
}

// NewConnection opens a connection for the configured driver.
func NewConnection(ctx context.Context, cfg Config) (Connection, error) {
	driver := cfg.Driver
	if driver == "" || driver == "auto" {
		driver = DetectDriver(cfg.URL)
	}

	var open func(ctx context.Context, cfg Config) (Connection, error)
	switch driver {
	case DriverPostgres:
		open = newPostgresConnection
	case DriverSQLite:
		open = newSQLiteConnection
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if open == nil {
		return nil, fmt.Errorf("database driver %s is not registered", driver)
	}
	return open(ctx, cfg)
}

// DefaultSQLitePath returns the local-mode database file location.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".talentscope", "data.db")
}

// DefaultLocalConfig returns the zero-config local SQLite setup.
func DefaultLocalConfig() Config {
	return Config{
		Driver:     DriverSQLite,
		SQLitePath: DefaultSQLitePath(),
	}
}

// EnsureDirectory creates the parent directory of path when missing.
func EnsureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// Connection factories are registered from the driver subpackages via their
// init functions; importing a subpackage makes its driver available.
var (
	newPostgresConnection func(ctx context.Context, cfg Config) (Connection, error)
	newSQLiteConnection   func(ctx context.Context, cfg Config) (Connection, error)
)

// RegisterPostgresDriver installs the Postgres connection factory.
func RegisterPostgresDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	newPostgresConnection = fn
}

// RegisterSQLiteDriver installs the SQLite connection factory.
func RegisterSQLiteDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	newSQLiteConnection = fn
}
