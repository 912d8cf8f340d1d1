// Package migrations holds Go migrations whose DDL depends on the driver.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect must be called before goose.Up with "sqlite3", "postgres" or "mysql".
func SetDialect(d string) {
	dialect = d
}
