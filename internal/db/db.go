package db

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when an operation targets an id that matches no row.
var ErrNotFound = errors.New("todo not found")

func Connect(driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS todo_list (
  id SERIAL PRIMARY KEY,
  monday TEXT,
  tuesday TEXT,
  wednesday TEXT,
  thursday TEXT,
  friday TEXT,
  status TEXT NOT NULL DEFAULT 'n',
  created_at TIMESTAMP NOT NULL DEFAULT now()
);`

// EnsureSchema creates the todo_list table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
