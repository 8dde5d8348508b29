package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/depu2006/CareerGenomeai/internal/models"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	if user.Profile == nil {
		user.Profile = map[string]any{}
	}
	body, err := json.Marshal(userRow{User: *user, PasswordHash: user.PasswordHash})
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, "INSERT INTO users(id, email, body) VALUES(?, ?, ?)", user.ID, user.Email, string(body))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return ErrEmailExists
		}
		if sqliteUnavailable(err) {
			return fmt.Errorf("storage: insert user: %w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("storage: insert user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, body FROM users WHERE email = ?", email)
	return scanUser(row)
}

func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, body FROM users WHERE id = ?", id)
	return scanUser(row)
}

func (s *SQLiteStore) UpdateProfile(ctx context.Context, id string, profile map[string]any) error {
	if profile == nil {
		profile = map[string]any{}
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, "UPDATE users SET body = json_set(body, '$.profile', json(?)) WHERE id = ?", string(raw), id)
	if err != nil {
		return fmt.Errorf("storage: update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// 비밀번호 해시는 json:"-" 이므로 별도 필드로 직렬화
type userRow struct {
	models.User
	PasswordHash string `json:"password"`
}

func scanUser(row *sql.Row) (*models.User, error) {
	var id, body string
	if err := row.Scan(&id, &body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if sqliteUnavailable(err) {
			return nil, fmt.Errorf("storage: load user: %w: %w", ErrUnavailable, err)
		}
		return nil, err
	}
	var r userRow
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("storage: decode user: %w", err)
	}
	user := r.User
	user.ID = id
	user.PasswordHash = r.PasswordHash
	if user.Profile == nil {
		user.Profile = map[string]any{}
	}
	return &user, nil
}
