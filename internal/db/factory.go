// Package db opens the archive database and applies its migrations.
package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// New opens a database for driver (sqlite3, mysql or postgres) and dsn.
func New(driver, dsn string) (*sqlx.DB, error) {
	var name string
	switch driver {
	case "sqlite3":
		name = "sqlite" // modernc.org/sqlite registers as "sqlite"
	case "mysql", "postgres":
		name = driver
	default:
		return nil, fmt.Errorf("unsupported DB driver %q: must be sqlite3, mysql, or postgres", driver)
	}

	conn, err := sqlx.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}
	return conn, nil
}
