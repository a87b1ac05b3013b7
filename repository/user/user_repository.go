package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/valentinalvarez/ecommerce-accounts/model"
)

// errEmptyFilter guards Get from returning an arbitrary row when every
// filter field holds its zero value.
var errEmptyFilter = errors.New("user filter has no conditions")

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, req *model.UserEntity) error
	Delete(ctx context.Context, id uint64) error
	SetResetToken(ctx context.Context, id uint64, token string, expires time.Time) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery  = `INSERT INTO user (first_name, last_name, email, age, password_hash, role, phone, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	getUserBase      = `SELECT id, first_name, last_name, email, age, password_hash, role, phone, password_reset_token, password_reset_expires, created_at, updated_at FROM user WHERE true`
	updateUserQuery  = `UPDATE user SET first_name = ?, last_name = ?, email = ?, age = ?, role = ?, phone = ?, updated_at = NOW() WHERE id = ?`
	deleteUserQuery  = `DELETE FROM user WHERE id = ?`
	setResetQuery    = `UPDATE user SET password_reset_token = ?, password_reset_expires = ?, updated_at = NOW() WHERE id = ?`
	setPasswordQuery = `UPDATE user SET password_hash = ?, password_reset_token = NULL, password_reset_expires = NULL, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.FirstName, data.LastName, data.Email, data.Age, data.PasswordHash, data.Role, data.Phone)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.ResetToken != "" {
		query += " AND password_reset_token = ?"
		args = append(args, filter.ResetToken)
	}
	if len(args) == 0 {
		return nil, errEmptyFilter
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery,
		data.FirstName, data.LastName, data.Email, data.Age, data.Role, data.Phone, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	return err
}

func (s *SQL) SetResetToken(ctx context.Context, id uint64, token string, expires time.Time) error {
	_, err := s.conn.ExecContext(ctx, setResetQuery, token, expires, id)
	return err
}

// UpdatePassword stores a new hash and clears any outstanding reset token.
func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, setPasswordQuery, passwordHash, id)
	return err
}
