/*
Package auth implements registration and login on top of a credential store.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"medauth/internal/app/credstore"
	"medauth/internal/pkg/logx"
)

// DefaultCost is the bcrypt cost used when none is configured.
const DefaultCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

var (
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict means the email is already registered.
	ErrConflict = errors.New("email already registered")

	// ErrNotFound means no user is registered with the email.
	ErrNotFound = errors.New("email not found")

	// ErrInvalidCredentials means the password does not match.
	ErrInvalidCredentials = errors.New("incorrect password")

	// ErrInvalidEmail means the email contains a character the store uses as a separator.
	ErrInvalidEmail = fmt.Errorf("%w: email contains a separator", ErrValidation)

	// ErrPasswordTooLong means the password exceeds MaxPasswordBytes.
	ErrPasswordTooLong = fmt.Errorf("%w: password longer than %d bytes", ErrValidation, MaxPasswordBytes)
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries a login request.
type LoginInput struct {
	Email    string
	Password string
}

// Service registers users and checks their credentials.
type Service struct {
	store credstore.Store
	cost  int
}

// NewService returns a Service persisting to store and hashing with the
// given bcrypt cost; a cost of 0 means DefaultCost.
func NewService(store credstore.Store, cost int) *Service {
	if cost == 0 {
		cost = DefaultCost
	}
	return &Service{store: store, cost: cost}
}

// Register stores a new user. It fails with ErrValidation when a field is
// empty and ErrConflict when the email is taken. The name is stored as given;
// surrounding whitespace is dropped from the email only, since the stored
// line is trimmed when read back.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	name := in.Name
	email := strings.TrimSpace(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return ErrValidation
	}
	if !validEmailField(email) {
		return ErrInvalidEmail
	}
	if len(in.Password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	key := credstore.NormalizeEmail(email)
	if _, exists := users[key]; exists {
		logx.Warn("registration conflict: email already registered", "email", key)
		return ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	rec := credstore.Record{Email: key, Name: name, PasswordHash: string(hash)}
	if err := s.store.Append(ctx, rec); err != nil {
		return fmt.Errorf("append user: %w", err)
	}

	logx.Info("user registered", "email", key)
	return nil
}

// Login checks a user's password and returns the stored display name.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return "", ErrValidation
	}

	users, err := s.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load users: %w", err)
	}

	key := credstore.NormalizeEmail(email)
	rec, ok := users[key]
	if !ok {
		logx.Warn("login: email not found", "email", key)
		return "", ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)); err != nil {
		// A corrupt stored hash can never match, so it reads as a wrong password.
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logx.Error(err, "login: stored password hash is unusable", "email", key)
		} else {
			logx.Warn("login: password mismatch", "email", key)
		}
		return "", ErrInvalidCredentials
	}

	logx.Debug("user logged in", "email", key)
	return rec.Name, nil
}

// validEmailField rejects emails that would break the line format.
func validEmailField(email string) bool {
	return !strings.ContainsAny(email, ",\r\n")
}
