package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// MySQLUserRepo stores users in the `users` table.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id            VARCHAR(36)  PRIMARY KEY,
//	    name          VARCHAR(100) NOT NULL,
//	    email         VARCHAR(255) NOT NULL UNIQUE,
//	    password_hash VARCHAR(255) NOT NULL,
//	    role          VARCHAR(16)  NOT NULL,
//	    is_active     TINYINT(1)   NOT NULL DEFAULT 1,
//	    created_at    DATETIME     NOT NULL,
//	    updated_at    DATETIME     NOT NULL
//	);
type MySQLUserRepo struct{ DB *sql.DB }

// NewMySQLUserRepo returns a user repository bound to the given database.
func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{DB: db} }

func (r *MySQLUserRepo) Save(ctx context.Context, u *model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, is_active, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?)",
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.Active, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		// 1062 = ER_DUP_ENTRY; the unique index on email is the only
		// one this insert can trip.
		if strings.Contains(err.Error(), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *MySQLUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, role, is_active, created_at, updated_at FROM users WHERE id=? LIMIT 1",
		id))
}

func (r *MySQLUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, role, is_active, created_at, updated_at FROM users WHERE email=? LIMIT 1",
		model.NormalizeEmail(email)))
}

func (r *MySQLUserRepo) scanOne(row *sql.Row) (*model.User, error) {
	var (
		u    model.User
		role string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return &u, nil
}
