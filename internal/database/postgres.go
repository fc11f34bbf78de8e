package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type postgresDB struct {
	db *sql.DB
}

// OpenPostgres connects to the Postgres instance at connStr and
// bootstraps the schema.
func OpenPostgres(connStr string) (DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(30 * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &postgresDB{db: db}, nil
}

func (p *postgresDB) Query(query string, args ...any) (*sql.Rows, error) {
	return p.db.Query(rewritePlaceholders(query), args...)
}

func (p *postgresDB) QueryRow(query string, args ...any) *sql.Row {
	return p.db.QueryRow(rewritePlaceholders(query), args...)
}

func (p *postgresDB) Exec(query string, args ...any) (Result, error) {
	return postgresExec(p.db, query, args...)
}

func (p *postgresDB) Begin() (Tx, error) {
	tx, err := p.db.Begin()
	if err != nil {
		return nil, err
	}
	return &postgresTx{tx: tx}, nil
}

func (p *postgresDB) Close() error {
	return p.db.Close()
}

type postgresTx struct {
	tx *sql.Tx
}

func (t *postgresTx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.tx.Query(rewritePlaceholders(query), args...)
}

func (t *postgresTx) QueryRow(query string, args ...any) *sql.Row {
	return t.tx.QueryRow(rewritePlaceholders(query), args...)
}

func (t *postgresTx) Exec(query string, args ...any) (Result, error) {
	return postgresExec(t.tx, query, args...)
}

func (t *postgresTx) Commit() error   { return t.tx.Commit() }
func (t *postgresTx) Rollback() error { return t.tx.Rollback() }

type pgExecer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// postgresExec runs a write statement. Postgres has no LastInsertId, so
// INSERTs lacking a RETURNING clause get "RETURNING id" appended and the
// generated id is scanned back; non-integer ids (blog post slugs) report
// zero.
func postgresExec(e pgExecer, query string, args ...any) (Result, error) {
	q := rewritePlaceholders(query)

	if isInsert(q) {
		var id any
		if err := e.QueryRow(appendReturningID(q), args...).Scan(&id); err != nil {
			return Result{}, err
		}
		return Result{LastInsertID: generatedID(id), RowsAffected: 1}, nil
	}

	res, err := e.Exec(q, args...)
	if err != nil {
		return Result{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	return Result{RowsAffected: rows}, nil
}

func isInsert(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT")
}

// appendReturningID adds "RETURNING id" to an INSERT that does not
// already carry a RETURNING clause. Other statements pass through.
func appendReturningID(query string) string {
	if !isInsert(query) || strings.Contains(strings.ToUpper(query), "RETURNING") {
		return query
	}
	return query + " RETURNING id"
}

// generatedID extracts the scanned generated id. Text primary keys (blog
// post slugs) have no numeric id to report and map to zero.
func generatedID(id any) int64 {
	if n, ok := id.(int64); ok {
		return n
	}
	return 0
}

// rewritePlaceholders converts `?` markers to Postgres `$n` positional
// parameters, leaving quoted literals untouched.
func rewritePlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inString := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inString = !inString
			b.WriteByte(c)
		case c == '?' && !inString:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
