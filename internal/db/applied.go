// Package db reads migration bookkeeping state from a database.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// StateReader reports which migrations a database records as applied.
type StateReader interface {
	Applied(app string) (map[string]time.Time, error)
	Close() error
}

// NewStateReader connects to the database holding the bookkeeping
// table. Only postgres connection strings are supported.
func NewStateReader(connStr string) (StateReader, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &postgresStateReader{db: db}, nil
}

type postgresStateReader struct {
	db *sql.DB
}

// Applied returns migration stems recorded in django_migrations, keyed
// by name with the time each was applied. An empty app matches all
// applications.
func (r *postgresStateReader) Applied(app string) (map[string]time.Time, error) {
	query := `SELECT name, applied FROM django_migrations`
	args := []interface{}{}
	if app != "" {
		query += ` WHERE app = $1`
		args = append(args, app)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying django_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]time.Time)
	for rows.Next() {
		var name string
		var at time.Time
		if err := rows.Scan(&name, &at); err != nil {
			return nil, fmt.Errorf("scanning django_migrations row: %w", err)
		}
		applied[name] = at
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading django_migrations rows: %w", err)
	}

	return applied, nil
}

func (r *postgresStateReader) Close() error {
	return r.db.Close()
}
