package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, email, full_name, password_hash, role, is_active, last_login_at, created_at, updated_at`

// CreateUserParams represents parameters for creating a console user
type CreateUserParams struct {
	Email        string
	FullName     string
	PasswordHash string
	Role         string
}

const sqlCreateUser = `
INSERT INTO users (email, full_name, password_hash, role)
VALUES (LOWER($1), $2, $3, $4)
RETURNING ` + userColumns

// CreateUser creates a user. A duplicate email returns ErrDuplicate.
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams, audit AuditEntry) (User, error) {
	var user User
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &user, sqlCreateUser, params.Email, params.FullName, params.PasswordHash, params.Role)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		audit.ResourceID = user.ID.String()
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

const sqlGetUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = LOWER($1)`

// GetUserByEmail retrieves a user by email, case-insensitively
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// ListUsersParams filters the user listing
type ListUsersParams struct {
	Search string
	Role   string
	Limit  int
	Offset int
}

// ListUsers returns one page of users ordered by name and the total matching.
func (s *Store) ListUsers(ctx context.Context, params ListUsersParams) ([]User, int, error) {
	var f filter
	f.search(params.Search, "email", "full_name")
	if params.Role != "" {
		f.add("role = ?", params.Role)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users"+f.where(), f.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	pageClause, args := f.page(params.Limit, params.Offset)
	users := []User{}
	query := "SELECT " + userColumns + " FROM users" + f.where() + " ORDER BY full_name, id" + pageClause
	if err := s.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// UpdateUserParams represents the admin-editable fields of a user
type UpdateUserParams struct {
	FullName     *string
	Role         *string
	IsActive     *bool
	PasswordHash *string
}

const sqlUpdateUser = `
UPDATE users
SET full_name = COALESCE($2, full_name),
    role = COALESCE($3, role),
    is_active = COALESCE($4, is_active),
    password_hash = COALESCE($5, password_hash),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + userColumns

// UpdateUser updates a user
func (s *Store) UpdateUser(ctx context.Context, userID uuid.UUID, params UpdateUserParams, audit AuditEntry) (User, error) {
	var user User
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &user, sqlUpdateUser, userID, params.FullName, params.Role, params.IsActive, params.PasswordHash)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

const sqlDeleteUser = `DELETE FROM users WHERE id = $1`

// DeleteUser hard deletes a user
func (s *Store) DeleteUser(ctx context.Context, userID uuid.UUID, audit AuditEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlDeleteUser, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}
		return insertAuditLog(ctx, tx, audit)
	})
}

const sqlTouchLastLogin = `UPDATE users SET last_login_at = CURRENT_TIMESTAMP WHERE id = $1`

// TouchLastLogin stamps a successful login
func (s *Store) TouchLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlTouchLastLogin, userID); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

const sqlListRoles = `SELECT name, description, permissions FROM roles ORDER BY name`

// ListRoles returns every role with its permissions
func (s *Store) ListRoles(ctx context.Context) ([]Role, error) {
	roles := []Role{}
	if err := s.db.SelectContext(ctx, &roles, sqlListRoles); err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

const sqlGetRole = `SELECT name, description, permissions FROM roles WHERE name = $1`

// GetRole retrieves a role by name
func (s *Store) GetRole(ctx context.Context, name string) (Role, error) {
	var role Role
	err := s.db.GetContext(ctx, &role, sqlGetRole, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Role{}, ErrNotFound
		}
		return Role{}, fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}
