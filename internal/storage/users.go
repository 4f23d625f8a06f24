package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/HarshDhiman001/site-plus/internal/models"
)

// CreateUser inserts a new account and returns it. Returns ErrDuplicate if
// the email is already registered.
func (s *Store) CreateUser(ctx context.Context, email string, hashedPassword []byte, displayName string) (*models.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, hashed_password, display_name) VALUES (?, ?, ?)`,
		email, hashedPassword, displayName,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("user %q: %w", email, ErrDuplicate)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}
	return s.GetUserByID(ctx, id)
}

// GetUserByEmail returns the account with the given email.
// Returns ErrNotFound if no such account exists.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `WHERE email = ?`, email)
}

// GetUserByID returns the account with the given ID.
// Returns ErrNotFound if no such account exists.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, `WHERE id = ?`, id)
}

func (s *Store) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	var (
		user        models.User
		createdAt   string
		lastLoginAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, hashed_password, display_name, created_at, last_login_at
		 FROM users `+where, arg,
	).Scan(&user.ID, &user.Email, &user.HashedPassword, &user.DisplayName, &createdAt, &lastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	user.CreatedAt = parseTime(createdAt)
	if lastLoginAt.Valid {
		user.LastLoginAt = parseTimePtr(&lastLoginAt.String)
	}
	return &user, nil
}

// TouchLastLogin records a successful login for the user.
func (s *Store) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = datetime('now') WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("touching last login: %w", err)
	}
	return nil
}
