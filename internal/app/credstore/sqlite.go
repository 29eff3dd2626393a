package credstore

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	sqliteSelectUsers = `SELECT email, name, password_hash FROM users ORDER BY id`
	sqliteInsertUser  = `INSERT INTO users (email, name, password_hash) VALUES (?, ?, ?)`
)

// SQLiteStore keeps records in the users table of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already migrated database. The store owns db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (map[string]Record, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelectUsers)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Email, &rec.Name, &rec.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return index(records), nil
}

func (s *SQLiteStore) Append(ctx context.Context, rec Record) error {
	rec = normalize(rec)
	if _, err := s.db.ExecContext(ctx, sqliteInsertUser, rec.Email, rec.Name, rec.PasswordHash); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
