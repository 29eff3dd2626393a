package credstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgSelectUsers = `SELECT email, name, password_hash FROM users ORDER BY id`
	pgInsertUser  = `INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3)`
)

// PostgresStore keeps records in the users table of a PostgreSQL database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an already migrated pool. The store owns the pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context) (map[string]Record, error) {
	rows, err := s.pool.Query(ctx, pgSelectUsers)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		var rec Record
		err := row.Scan(&rec.Email, &rec.Name, &rec.PasswordHash)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}

	return index(records), nil
}

func (s *PostgresStore) Append(ctx context.Context, rec Record) error {
	rec = normalize(rec)
	if _, err := s.pool.Exec(ctx, pgInsertUser, rec.Email, rec.Name, rec.PasswordHash); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
