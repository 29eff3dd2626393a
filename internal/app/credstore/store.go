/*
Package credstore persists user credential records.

A record is an email, a display name and a bcrypt hash. Stores only ever load
everything and append; records are never updated or deleted. Duplicate emails
are not rejected here: when loading, the last record appended for an email
wins.
*/
package credstore

import (
	"context"
	"strings"
)

// Record is one registered user.
type Record struct {
	Email        string
	Name         string
	PasswordHash string
}

// Store is the persistence contract the auth service depends on.
type Store interface {
	// Load returns every record keyed by lowercased email.
	Load(ctx context.Context) (map[string]Record, error)

	// Append adds rec after all existing records.
	Append(ctx context.Context, rec Record) error
}

// Backend is a Store owning resources that must be released on shutdown.
type Backend interface {
	Store
	Close() error
}

// NormalizeEmail returns the lookup key for an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

var nameReplacer = strings.NewReplacer(",", " ", "\r", " ", "\n", " ")

// SanitizeName makes a display name safe for the line format: commas and
// line breaks become spaces.
func SanitizeName(name string) string {
	return nameReplacer.Replace(name)
}

// normalize applies the storage form of every field.
func normalize(rec Record) Record {
	return Record{
		Email:        NormalizeEmail(rec.Email),
		Name:         SanitizeName(rec.Name),
		PasswordHash: rec.PasswordHash,
	}
}

// index builds the lookup map from records in insertion order.
func index(records []Record) map[string]Record {
	users := make(map[string]Record, len(records))
	for _, rec := range records {
		if rec.Email == "" || rec.PasswordHash == "" {
			continue
		}
		rec.Email = NormalizeEmail(rec.Email)
		users[rec.Email] = rec
	}
	return users
}
