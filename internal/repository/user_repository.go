package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// User mirrors the 'users' table. Password and SecretKeyword are stored in
// plain text; the secret keyword exists only to authorize password resets.
type User struct {
	ID            int64
	Username      string
	Password      string
	SecretKeyword string
}

// UserRepo manages persistence for users.
type UserRepo struct{ db *sql.DB }

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Register inserts a new user and returns its ID. Usernames are globally
// unique; a collision returns ErrDuplicateUser and leaves no partial state.
func (r *UserRepo) Register(ctx context.Context, username, password, secret string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password, secret_keyword) VALUES (?, ?, ?)",
		username, password, secret)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateUser
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Authenticate returns the user's ID when username and password both match
// exactly. Any mismatch yields ErrInvalidCredentials with no indication of
// which field was wrong.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM users WHERE username = ? AND password = ?",
		username, password).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ResetPassword sets a new password for the user identified by username and
// secret keyword. Zero rows affected means the pair matched nothing and is
// reported as ErrInvalidCredentials.
func (r *UserRepo) ResetPassword(ctx context.Context, username, secret, newPassword string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET password = ? WHERE username = ? AND secret_keyword = ?",
		newPassword, username, secret)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidCredentials
	}
	return nil
}
