package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/iug/student-portal/internal/config"
)

// NewSQLiteDB opens (or creates) the SQLite database file at the configured
// path and verifies the connection. Foreign keys are enabled per connection;
// SQLite leaves them off by default.
func NewSQLiteDB(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Database.Path)

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single writer suits SQLite; database/sql otherwise opens competing
	// connections that can hit SQLITE_BUSY under write load.
	database.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return database, nil
}
