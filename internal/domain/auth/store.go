package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workwise/internal/apperr"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const userColumns = `id, username, display_name, role, COALESCE(employee_id::text, ''), password_hash, mfa_enabled, mfa_secret_enc, status, created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.DisplayName, &role, &u.EmployeeID, &u.PasswordHash, &u.MFAEnabled, &u.MFASecretEnc, &u.Status, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, apperr.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	parsed, err := ParseRole(role)
	if err != nil {
		return User{}, err
	}
	u.Role = parsed
	return u, nil
}

func (s *Store) FindActiveUserByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE lower(username) = lower($1) AND status = $2
  `, username, UserStatusActive))
}

func (s *Store) GetUser(ctx context.Context, userID string) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
}

func (s *Store) CreateUser(ctx context.Context, user User) (string, error) {
	if user.Status == "" {
		user.Status = UserStatusActive
	}
	var employeeID any
	if user.EmployeeID != "" {
		employeeID = user.EmployeeID
	}
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, display_name, role, employee_id, password_hash, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    ON CONFLICT (username) DO UPDATE SET display_name = EXCLUDED.display_name
    RETURNING id
  `, user.Username, user.DisplayName, string(user.Role), employeeID, user.PasswordHash, user.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateMFASecret(ctx context.Context, userID string, secretEnc []byte) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET mfa_secret_enc = $1, mfa_enabled = false WHERE id = $2", secretEnc, userID)
	return err
}

func (s *Store) SetMFAEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET mfa_enabled = $1 WHERE id = $2", enabled, userID)
	return err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}
