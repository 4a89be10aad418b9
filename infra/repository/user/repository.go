package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	infra "github.com/splitmoney/splitmoney/infra/repository"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repouser "github.com/splitmoney/splitmoney/pkg/repository/user"
)

type repository struct {
	db *gorm.DB
}

// New returns the gorm-backed account repository.
func New(db *gorm.DB) repouser.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.UserCreate) error {
	u := &User{
		FullName:     create.FullName,
		Email:        create.Email,
		ContactNo:    create.ContactNo,
		PasswordHash: create.Password,
		Status:       int(domain.AccountActive),
	}
	u.ID = create.ID
	u.IsActive = true
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var u User
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var u User
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) List(
	ctx context.Context,
	search string,
	page, pageSize int,
) ([]*dto.UserRead, int64, error) {
	q := r.db.WithContext(ctx).Model(&User{}).Scopes(infra.Active)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []User
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	updates := make(map[string]any)
	if update.FullName != nil {
		updates["full_name"] = *update.FullName
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.ContactNo != nil {
		updates["contact_no"] = *update.ContactNo
	}
	if update.Password != nil {
		updates["password_hash"] = *update.Password
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).Updates(updates).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).Update("is_active", false).Error
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Scopes(infra.Active).
		Count(&count).Error
	return count, err
}

func (r *repository) SetOtp(ctx context.Context, id uuid.UUID, code string, issuedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]any{"otp_code": code, "otp_created_at": issuedAt}).Error
}

func (r *repository) ClearOtp(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]any{"otp_code": nil, "otp_created_at": nil}).Error
}

func (r *repository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Update("email_verified", true).Error
}

func (r *repository) SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Update("last_login", at).Error
}

func mapModelToDTO(u *User) *dto.UserRead {
	read := &dto.UserRead{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		ContactNo:      u.ContactNo,
		HashedPassword: u.PasswordHash,
		Status:         domain.AccountStatus(u.Status),
		EmailVerified:  u.EmailVerified,
		OtpCreatedAt:   u.OtpCreatedAt,
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if u.OtpCode != nil {
		read.OtpCode = *u.OtpCode
	}
	return read
}

var _ repouser.Repository = (*repository)(nil)
