package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// The dashboard keeps its current batch in scs sessions. Column types follow
// what each scs store adapter reads back.
func init() {
	goose.AddMigrationContext(upCreateSessions, downCreateSessions)
}

func sessionsDDL() string {
	token, data, expiry := "TEXT", "BLOB", "REAL"
	switch dialect {
	case "postgres":
		data, expiry = "BYTEA", "TIMESTAMPTZ"
	case "mysql":
		token, expiry = "VARCHAR(43)", "TIMESTAMP(6)"
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sessions (
    token  %s PRIMARY KEY,
    data   %s NOT NULL,
    expiry %s NOT NULL
)`, token, data, expiry)
}

func upCreateSessions(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, sessionsDDL()); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX sessions_expiry_idx ON sessions (expiry)`); err != nil {
		return fmt.Errorf("create sessions expiry index: %w", err)
	}
	return nil
}

func downCreateSessions(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS sessions`)
	return err
}
