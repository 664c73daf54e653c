// Package database -- обертка над database/sql для postgresql хранилища находок.
package database

import (
	"context"
	"database/sql"
)

// Database интерфейс для базы данных.
type Database interface {
	Connect(connStr string) error
	Close() error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	PingContext(ctx context.Context) error
}
