package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteDB struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// bootstraps the schema. ":memory:" is accepted for tests.
func OpenSQLite(path string) (DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteDB{db: db}, nil
}

func (s *sqliteDB) Query(query string, args ...any) (*sql.Rows, error) {
	return s.db.Query(query, args...)
}

func (s *sqliteDB) QueryRow(query string, args ...any) *sql.Row {
	return s.db.QueryRow(query, args...)
}

func (s *sqliteDB) Exec(query string, args ...any) (Result, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return Result{}, err
	}
	return sqliteResult(res)
}

func (s *sqliteDB) Begin() (Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *sqliteDB) Close() error {
	return s.db.Close()
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.tx.Query(query, args...)
}

func (t *sqliteTx) QueryRow(query string, args ...any) *sql.Row {
	return t.tx.QueryRow(query, args...)
}

func (t *sqliteTx) Exec(query string, args ...any) (Result, error) {
	res, err := t.tx.Exec(query, args...)
	if err != nil {
		return Result{}, err
	}
	return sqliteResult(res)
}

func (t *sqliteTx) Commit() error   { return t.tx.Commit() }
func (t *sqliteTx) Rollback() error { return t.tx.Rollback() }

func sqliteResult(res sql.Result) (Result, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	return Result{LastInsertID: id, RowsAffected: rows}, nil
}
