// Package database presents one uniform query surface over two
// interchangeable relational backends: SQLite for local use and
// PostgreSQL for deployment, selected by the presence of DATABASE_URL.
// SQL throughout the codebase is written with SQLite's positional `?`
// placeholders; the Postgres implementation rewrites them to `$n` and
// arranges for generated ids to be reported from INSERTs.
package database

import (
	"database/sql"
)

// Result reports the outcome of a write statement.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Querier is the read/write surface shared by a connection and a
// transaction.
type Querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (Result, error)
}

// DB is an open backend connection.
type DB interface {
	Querier
	Begin() (Tx, error)
	Close() error
}

// Tx is an open transaction on either backend.
type Tx interface {
	Querier
	Commit() error
	Rollback() error
}

// Open selects the backend: Postgres when databaseURL is set, otherwise
// the SQLite file at sqlitePath. The schema is bootstrapped on open.
func Open(databaseURL, sqlitePath string) (DB, error) {
	if databaseURL != "" {
		return OpenPostgres(databaseURL)
	}
	return OpenSQLite(sqlitePath)
}
