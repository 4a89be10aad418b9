// Package fixtures provides hand-written testify mocks for the persistence
// contracts used across service tests.
package fixtures

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/splitmoney/splitmoney/pkg/dto"
	"github.com/splitmoney/splitmoney/pkg/mailer"
)

// MockUserRepository mocks the account store.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, search string, page, pageSize int) ([]*dto.UserRead, int64, error) {
	args := m.Called(ctx, search, page, pageSize)
	users, _ := args.Get(0).([]*dto.UserRead)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SetOtp(ctx context.Context, id uuid.UUID, code string, issuedAt time.Time) error {
	return m.Called(ctx, id, code, issuedAt).Error(0)
}

func (m *MockUserRepository) ClearOtp(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

// MockRoleRepository mocks the role store.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockRoleRepository) Get(ctx context.Context, id uuid.UUID) (*dto.RoleRead, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*dto.RoleRead)
	return r, args.Error(1)
}

func (m *MockRoleRepository) GetByName(ctx context.Context, name string) (*dto.RoleRead, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*dto.RoleRead)
	return r, args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]*dto.RoleRead, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]*dto.RoleRead)
	return roles, args.Error(1)
}

func (m *MockRoleRepository) Update(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockRoleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRoleRepository) Assign(ctx context.Context, userID, roleID uuid.UUID) error {
	return m.Called(ctx, userID, roleID).Error(0)
}

func (m *MockRoleRepository) ActiveRoleName(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockRoleRepository) ActiveAssignmentCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// FakeSender records delivered codes instead of talking to a relay.
type FakeSender struct {
	Result   mailer.DeliveryResult
	LastTo   string
	LastCode string
	Calls    int
}

func (f *FakeSender) SendOtp(_ context.Context, to, code string) mailer.DeliveryResult {
	f.Calls++
	f.LastTo = to
	f.LastCode = code
	if f.Result.Status == "" {
		return mailer.DeliveryResult{Status: mailer.StatusSent, Message: "OTP sent to registered email"}
	}
	return f.Result
}
