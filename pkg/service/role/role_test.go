package role_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/splitmoney/splitmoney/internal/fixtures"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	rolesvc "github.com/splitmoney/splitmoney/pkg/service/role"
)

func newService() (*rolesvc.Service, *fixtures.MockRoleRepository, *fixtures.MockUserRepository) {
	roles := new(fixtures.MockRoleRepository)
	users := new(fixtures.MockUserRepository)
	return rolesvc.New(roles, users, slog.Default()), roles, users
}

func TestCreate_DuplicateName(t *testing.T) {
	t.Parallel()
	svc, roles, _ := newService()
	roles.On("GetByName", mock.Anything, "ADMIN").
		Return(&dto.RoleRead{ID: uuid.New(), Name: "ADMIN"}, nil)

	_, err := svc.Create(context.Background(), "ADMIN")
	require.ErrorIs(t, err, domain.ErrValidation)
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_EmptyName(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()
	svc, roles, _ := newService()
	roles.On("GetByName", mock.Anything, "Moderator").Return(nil, nil)
	roles.On("Create", mock.Anything, mock.AnythingOfType("uuid.UUID"), "Moderator").Return(nil)
	roles.On("Get", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&dto.RoleRead{Name: "Moderator"}, nil)

	r, err := svc.Create(context.Background(), "Moderator")
	require.NoError(t, err)
	assert.Equal(t, "Moderator", r.Name)
	roles.AssertExpectations(t)
}

func TestAssign_UnknownUser(t *testing.T) {
	t.Parallel()
	svc, roles, users := newService()
	users.On("Get", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil, nil)

	err := svc.Assign(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
	roles.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssign_UnknownRole(t *testing.T) {
	t.Parallel()
	svc, roles, users := newService()
	userID := uuid.New()
	users.On("Get", mock.Anything, userID).Return(&dto.UserRead{ID: userID}, nil)
	roles.On("Get", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil, nil)

	err := svc.Assign(context.Background(), userID, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
	roles.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssign_Success(t *testing.T) {
	t.Parallel()
	svc, roles, users := newService()
	userID, roleID := uuid.New(), uuid.New()
	users.On("Get", mock.Anything, userID).Return(&dto.UserRead{ID: userID}, nil)
	roles.On("Get", mock.Anything, roleID).Return(&dto.RoleRead{ID: roleID, Name: "ADMIN"}, nil)
	roles.On("Assign", mock.Anything, userID, roleID).Return(nil)

	err := svc.Assign(context.Background(), userID, roleID)
	require.NoError(t, err)
	roles.AssertExpectations(t)
}

func TestActiveRole_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	svc, roles, _ := newService()
	roles.On("ActiveRoleName", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return("", nil)

	name, err := svc.ActiveRole(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRoleName, name)
}
