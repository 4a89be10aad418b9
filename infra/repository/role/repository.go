package role

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	infra "github.com/splitmoney/splitmoney/infra/repository"
	"github.com/splitmoney/splitmoney/pkg/dto"
	reporole "github.com/splitmoney/splitmoney/pkg/repository/role"
)

type repository struct {
	db *gorm.DB
}

// New returns the gorm-backed role repository.
func New(db *gorm.DB) reporole.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, id uuid.UUID, name string) error {
	role := &Role{Name: name}
	role.ID = id
	role.IsActive = true
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.RoleRead, error) {
	var role Role
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		First(&role, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&role), nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*dto.RoleRead, error) {
	var role Role
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&role), nil
}

func (r *repository) List(ctx context.Context) ([]*dto.RoleRead, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		Order("name").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.RoleRead, 0, len(roles))
	for i := range roles {
		result = append(result, mapModelToDTO(&roles[i]))
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, name string) error {
	return r.db.WithContext(ctx).Model(&Role{}).
		Where("id = ?", id).Update("name", name).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Role{}).
		Where("id = ?", id).Update("is_active", false).Error
}

// Assign deactivates all active assignments for the account, then inserts
// the new one. Both statements run inside one transaction so a crash cannot
// leave the account with zero active roles.
func (r *repository) Assign(ctx context.Context, userID, roleID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&UserRole{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}
		assignment := &UserRole{UserID: userID, RoleID: roleID}
		assignment.ID = uuid.New()
		assignment.IsActive = true
		return tx.Create(assignment).Error
	})
}

func (r *repository) ActiveRoleName(ctx context.Context, userID uuid.UUID) (string, error) {
	var name string
	err := r.db.WithContext(ctx).Model(&UserRole{}).
		Select("roles.name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND user_roles.is_active = ?", userID, true).
		Where("roles.is_active = ?", true).
		Limit(1).
		Scan(&name).Error
	if err != nil {
		return "", err
	}
	return name, nil
}

func (r *repository) ActiveAssignmentCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserRole{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}

func mapModelToDTO(role *Role) *dto.RoleRead {
	return &dto.RoleRead{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
	}
}

var _ reporole.Repository = (*repository)(nil)
