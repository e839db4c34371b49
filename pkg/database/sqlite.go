package database

import (
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/noah-isme/doubt-tracker-api/pkg/config"
)

// Open returns a configured SQLite client backed by a single database file.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	if cfg.BusyTimeout > 0 {
		params.Set("_busy_timeout", fmt.Sprintf("%d", cfg.BusyTimeout.Milliseconds()))
	}

	dsn := fmt.Sprintf("file:%s?%s", cfg.Path, params.Encode())

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers at the engine level; a single pooled
	// connection keeps the writer queue inside the driver.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
