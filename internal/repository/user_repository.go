package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/contact-management/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user. The username column is the primary key; a lost
// race between the existence pre-check and this insert still surfaces as
// ErrUsernameExists via MySQL error 1062.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password, name) VALUES (?,?,?)",
		u.Username, u.Password, u.Name)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameExists
		}
		return err
	}
	return nil
}

// CountByUsername reports how many users hold the given username (0 or 1).
func (r *UserRepo) CountByUsername(ctx context.Context, username string) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username=?", username).Scan(&n)
	return n, err
}

// GetByUsername fetches a user by its natural key.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT username,password,name,token FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.Username, &u.Password, &u.Name, &u.Token)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByToken resolves a session token to its user. Only logged-in users
// have a non-null token, so a logged-out token never matches.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT username,password,name,token FROM users WHERE token=? LIMIT 1",
		token).Scan(&u.Username, &u.Password, &u.Name, &u.Token)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// UpdateProfile persists name and password hash for a user.
func (r *UserRepo) UpdateProfile(ctx context.Context, username, name, password string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=?, password=? WHERE username=?",
		name, password, username)
	return err
}

// SetToken stores a fresh session token, replacing any previous one.
func (r *UserRepo) SetToken(ctx context.Context, username, token string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET token=? WHERE username=?", token, username)
	return err
}

// ClearToken nulls the session token, ending the active session.
func (r *UserRepo) ClearToken(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET token=NULL WHERE username=?", username)
	return err
}
