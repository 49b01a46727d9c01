package processor

import (
	"context"
	"testing"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestProcessor(t *testing.T) (AdminProcessor, *MockAdminStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockStore := NewMockAdminStore(ctrl)
	return New(mockStore, observability.NewNopLogger()), mockStore
}

func admin() actor.Actor {
	return actor.Actor{ID: uuid.New(), Role: store.RoleAdmin}
}

func ptr[T any](v T) *T { return &v }

func TestAdminProcessor_CreateUser(t *testing.T) {
	valid := CreateUserRequest{
		Email:           " New.Analyst@Example.com ",
		FullName:        "New Analyst",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		Role:            store.RoleAnalyst,
	}

	tests := []struct {
		name      string
		actor     actor.Actor
		mutate    func(r *CreateUserRequest)
		setupMock func(m *MockAdminStore)
		wantErr   error
	}{
		{
			name:  "success",
			actor: admin(),
			setupMock: func(m *MockAdminStore) {
				m.EXPECT().GetRole(gomock.Any(), store.RoleAnalyst).Return(store.Role{Name: store.RoleAnalyst}, nil)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p store.CreateUserParams, audit store.AuditEntry) (store.User, error) {
						assert.Equal(t, "new.analyst@example.com", p.Email)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("s3cretpass")))
						assert.NotContains(t, audit.Changes, "password")
						return store.User{ID: uuid.New(), Email: p.Email}, nil
					})
			},
		},
		{
			name:    "short password",
			actor:   admin(),
			mutate:  func(r *CreateUserRequest) { r.Password, r.ConfirmPassword = "short", "short" },
			wantErr: ErrInvalidUser,
		},
		{
			name:    "confirmation mismatch",
			actor:   admin(),
			mutate:  func(r *CreateUserRequest) { r.ConfirmPassword = "s3cretpas" },
			wantErr: ErrPasswordMismatch,
		},
		{
			name:    "bad email",
			actor:   admin(),
			mutate:  func(r *CreateUserRequest) { r.Email = "not-an-email" },
			wantErr: ErrInvalidUser,
		},
		{
			name:   "unknown role",
			actor:  admin(),
			mutate: func(r *CreateUserRequest) { r.Role = "superuser" },
			setupMock: func(m *MockAdminStore) {
				m.EXPECT().GetRole(gomock.Any(), "superuser").Return(store.Role{}, store.ErrNotFound)
			},
			wantErr: ErrRoleNotFound,
		},
		{
			name:  "duplicate email",
			actor: admin(),
			setupMock: func(m *MockAdminStore) {
				m.EXPECT().GetRole(gomock.Any(), gomock.Any()).Return(store.Role{}, nil)
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.User{}, store.ErrDuplicate)
			},
			wantErr: ErrEmailExists,
		},
		{
			name:    "non-admin",
			actor:   actor.Actor{ID: uuid.New(), Role: store.RoleCampaignManager},
			wantErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, mockStore := newTestProcessor(t)
			if tt.setupMock != nil {
				tt.setupMock(mockStore)
			}
			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			_, err := proc.CreateUser(context.Background(), tt.actor, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdminProcessor_UpdateUser(t *testing.T) {
	t.Run("cannot deactivate self", func(t *testing.T) {
		proc, _ := newTestProcessor(t)
		a := admin()

		_, err := proc.UpdateUser(context.Background(), a, a.ID, UpdateUserRequest{IsActive: ptr(false)})
		assert.ErrorIs(t, err, ErrCannotModifySelf)
	})

	t.Run("password reset requires confirmation", func(t *testing.T) {
		proc, _ := newTestProcessor(t)

		_, err := proc.UpdateUser(context.Background(), admin(), uuid.New(), UpdateUserRequest{Password: ptr("longenough")})
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("role change", func(t *testing.T) {
		proc, mockStore := newTestProcessor(t)
		id := uuid.New()
		mockStore.EXPECT().GetRole(gomock.Any(), store.RoleApprover).Return(store.Role{}, nil)
		mockStore.EXPECT().
			UpdateUser(gomock.Any(), id, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p store.UpdateUserParams, audit store.AuditEntry) (store.User, error) {
				assert.Equal(t, store.RoleApprover, *p.Role)
				assert.Nil(t, p.PasswordHash)
				assert.Equal(t, store.RoleApprover, audit.Changes["role"])
				return store.User{ID: id, Role: *p.Role}, nil
			})

		got, err := proc.UpdateUser(context.Background(), admin(), id, UpdateUserRequest{Role: ptr(store.RoleApprover)})
		require.NoError(t, err)
		assert.Equal(t, store.RoleApprover, got.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		proc, mockStore := newTestProcessor(t)
		mockStore.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.User{}, store.ErrNotFound)

		_, err := proc.UpdateUser(context.Background(), admin(), uuid.New(), UpdateUserRequest{FullName: ptr("Someone")})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAdminProcessor_DeleteUser(t *testing.T) {
	proc, mockStore := newTestProcessor(t)
	a := admin()

	assert.ErrorIs(t, proc.DeleteUser(context.Background(), a, a.ID), ErrCannotModifySelf)

	mockStore.EXPECT().DeleteUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrNotFound)
	assert.ErrorIs(t, proc.DeleteUser(context.Background(), a, uuid.New()), ErrUserNotFound)
}

func TestBuildPermissionMatrix(t *testing.T) {
	m := BuildPermissionMatrix([]store.Role{
		{Name: store.RoleAdmin, Permissions: store.StringArray{"admin:*"}},
		{Name: store.RoleAnalyst, Permissions: store.StringArray{"reports:read", "unknown:thing"}},
	})

	assert.Equal(t, []string{store.RoleAdmin, store.RoleAnalyst}, m.Roles)
	for _, perm := range Permissions {
		assert.True(t, m.Grants[store.RoleAdmin][perm], perm)
	}
	assert.True(t, m.Grants[store.RoleAnalyst]["reports:read"])
	assert.False(t, m.Grants[store.RoleAnalyst]["campaigns:write"])
	assert.NotContains(t, m.Grants[store.RoleAnalyst], "unknown:thing")
}

func TestAdminProcessor_ListAuditLogs(t *testing.T) {
	proc, mockStore := newTestProcessor(t)
	actorID := uuid.New()
	mockStore.EXPECT().
		ListAuditLogs(gomock.Any(), store.ListAuditLogsParams{ResourceType: "campaign", ActorID: &actorID, Limit: 20, Offset: 20}).
		Return([]store.AuditLog{{ID: uuid.New()}}, 41, nil)

	got, err := proc.ListAuditLogs(context.Background(), ListAuditLogsRequest{Page: 2, PageSize: 20, ResourceType: "campaign", ActorID: &actorID})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Pagination.TotalPages)
}
