package database

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// withConn runs fn on a connection checked out of the pool for the duration of
// the call. The connection goes back to the pool on every exit path.
func (r *Repository) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}
