package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"
	"engage-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore defines the database operations required by AdminProcessor
type AdminStore interface {
	CreateUser(ctx context.Context, params store.CreateUserParams, audit store.AuditEntry) (store.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	ListUsers(ctx context.Context, params store.ListUsersParams) ([]store.User, int, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, params store.UpdateUserParams, audit store.AuditEntry) (store.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID, audit store.AuditEntry) error
	ListRoles(ctx context.Context) ([]store.Role, error)
	GetRole(ctx context.Context, name string) (store.Role, error)
	ListAuditLogs(ctx context.Context, params store.ListAuditLogsParams) ([]store.AuditLog, int, error)
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrRoleNotFound     = errors.New("role not found")
	ErrInvalidUser      = errors.New("invalid user")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrCannotModifySelf = errors.New("admins cannot delete or deactivate themselves")
	ErrForbidden        = errors.New("admin role required")
)

const minPasswordLength = 8

// Permissions lists every permission a role can hold, in display order.
var Permissions = []string{
	"campaigns:write",
	"campaigns:approve",
	"segments:write",
	"reports:read",
	"rewards:write",
	"admin:*",
}

type AdminProcessor struct {
	store  AdminStore
	logger *observability.Logger
}

func New(store AdminStore, logger *observability.Logger) AdminProcessor {
	return AdminProcessor{
		store:  store,
		logger: logger,
	}
}

type CreateUserRequest struct {
	Email           string
	FullName        string
	Password        string
	ConfirmPassword string
	Role            string
}

type UpdateUserRequest struct {
	FullName        *string
	Role            *string
	IsActive        *bool
	Password        *string
	ConfirmPassword *string
}

type ListUsersRequest struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

type UserList struct {
	Items      []store.User    `json:"items"`
	Pagination pagination.Info `json:"pagination"`
}

type ListAuditLogsRequest struct {
	Page         int
	PageSize     int
	ResourceType string
	ResourceID   string
	ActorID      *uuid.UUID
}

type AuditLogList struct {
	Items      []store.AuditLog `json:"items"`
	Pagination pagination.Info  `json:"pagination"`
}

// PermissionMatrix is the grid of roles against permissions
type PermissionMatrix struct {
	Permissions []string                   `json:"permissions"`
	Roles       []string                   `json:"roles"`
	Grants      map[string]map[string]bool `json:"grants"`
}

// BuildPermissionMatrix marks, per role, which known permissions it holds.
// A role holding admin:* is granted everything.
func BuildPermissionMatrix(roles []store.Role) PermissionMatrix {
	m := PermissionMatrix{
		Permissions: Permissions,
		Roles:       make([]string, 0, len(roles)),
		Grants:      make(map[string]map[string]bool, len(roles)),
	}
	for _, r := range roles {
		held := make(map[string]bool, len(r.Permissions))
		for _, perm := range r.Permissions {
			held[perm] = true
		}
		grants := make(map[string]bool, len(Permissions))
		for _, perm := range Permissions {
			grants[perm] = held["admin:*"] || held[perm]
		}
		m.Roles = append(m.Roles, r.Name)
		m.Grants[r.Name] = grants
	}
	return m
}

func validatePassword(password, confirm string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidUser, minPasswordLength)
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func (p *AdminProcessor) requireRole(ctx context.Context, name string) error {
	if _, err := p.store.GetRole(ctx, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRoleNotFound
		}
		p.logger.Error(ctx, "failed to get role", err)
		return err
	}
	return nil
}

// CreateUser creates a console user with a bcrypt-hashed password
func (p *AdminProcessor) CreateUser(ctx context.Context, a actor.Actor, req CreateUserRequest) (store.User, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "actor_id", Value: a.ID.String()})

	if !a.IsAdmin() {
		return store.User{}, ErrForbidden
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil || addr.Name != "" {
		return store.User{}, fmt.Errorf("%w: email is not valid", ErrInvalidUser)
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return store.User{}, fmt.Errorf("%w: full name is required", ErrInvalidUser)
	}
	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return store.User{}, err
	}
	if err := p.requireRole(ctx, req.Role); err != nil {
		return store.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return store.User{}, err
	}

	email := strings.ToLower(addr.Address)
	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         req.Role,
	}, a.Audit("create", store.AuditResourceUser, "", store.JSONB{"email": email, "role": req.Role}))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.User{}, ErrEmailExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return store.User{}, err
	}

	p.logger.Info(ctx, "user created successfully")
	return user, nil
}

// GetUser retrieves a user by ID
func (p *AdminProcessor) GetUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return store.User{}, err
	}
	return user, nil
}

// ListUsers returns one page of users
func (p *AdminProcessor) ListUsers(ctx context.Context, req ListUsersRequest) (UserList, error) {
	page := pagination.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()

	users, total, err := p.store.ListUsers(ctx, store.ListUsersParams{
		Search: req.Search,
		Role:   req.Role,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list users", err)
		return UserList{}, err
	}
	return UserList{Items: users, Pagination: pagination.NewInfo(total, page)}, nil
}

// UpdateUser changes a user's name, role, active flag or password
func (p *AdminProcessor) UpdateUser(ctx context.Context, a actor.Actor, userID uuid.UUID, req UpdateUserRequest) (store.User, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	if !a.IsAdmin() {
		return store.User{}, ErrForbidden
	}
	if a.ID == userID && req.IsActive != nil && !*req.IsActive {
		return store.User{}, ErrCannotModifySelf
	}

	params := store.UpdateUserParams{IsActive: req.IsActive}
	changes := store.JSONB{}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return store.User{}, fmt.Errorf("%w: full name is required", ErrInvalidUser)
		}
		params.FullName = &name
		changes["full_name"] = name
	}
	if req.Role != nil {
		if err := p.requireRole(ctx, *req.Role); err != nil {
			return store.User{}, err
		}
		params.Role = req.Role
		changes["role"] = *req.Role
	}
	if req.IsActive != nil {
		changes["is_active"] = *req.IsActive
	}
	if req.Password != nil {
		confirm := ""
		if req.ConfirmPassword != nil {
			confirm = *req.ConfirmPassword
		}
		if err := validatePassword(*req.Password, confirm); err != nil {
			return store.User{}, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			p.logger.Error(ctx, "failed to hash password", err)
			return store.User{}, err
		}
		h := string(hash)
		params.PasswordHash = &h
		changes["password"] = "reset"
	}

	user, err := p.store.UpdateUser(ctx, userID, params, a.Audit("update", store.AuditResourceUser, userID.String(), changes))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to update user", err)
		return store.User{}, err
	}

	p.logger.Info(ctx, "user updated successfully")
	return user, nil
}

// DeleteUser removes a user other than the caller
func (p *AdminProcessor) DeleteUser(ctx context.Context, a actor.Actor, userID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "user_id", Value: userID.String()},
	)

	if !a.IsAdmin() {
		return ErrForbidden
	}
	if a.ID == userID {
		return ErrCannotModifySelf
	}

	if err := p.store.DeleteUser(ctx, userID, a.Audit("delete", store.AuditResourceUser, userID.String(), nil)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to delete user", err)
		return err
	}

	p.logger.Info(ctx, "user deleted successfully")
	return nil
}

// ListRoles returns every role with its permissions
func (p *AdminProcessor) ListRoles(ctx context.Context) ([]store.Role, error) {
	roles, err := p.store.ListRoles(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list roles", err)
		return nil, err
	}
	return roles, nil
}

// GetPermissionMatrix returns the role by permission grid
func (p *AdminProcessor) GetPermissionMatrix(ctx context.Context) (PermissionMatrix, error) {
	roles, err := p.ListRoles(ctx)
	if err != nil {
		return PermissionMatrix{}, err
	}
	return BuildPermissionMatrix(roles), nil
}

// ListAuditLogs returns one page of audit rows, newest first
func (p *AdminProcessor) ListAuditLogs(ctx context.Context, req ListAuditLogsRequest) (AuditLogList, error) {
	page := pagination.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()

	logs, total, err := p.store.ListAuditLogs(ctx, store.ListAuditLogsParams{
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ActorID:      req.ActorID,
		Limit:        page.Limit(),
		Offset:       page.Offset(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list audit logs", err)
		return AuditLogList{}, err
	}
	return AuditLogList{Items: logs, Pagination: pagination.NewInfo(total, page)}, nil
}
