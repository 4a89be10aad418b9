package role

import (
	"github.com/google/uuid"

	infra "github.com/splitmoney/splitmoney/infra/repository"
)

// Role represents a named permission bucket.
type Role struct {
	infra.Base
	Name string `gorm:"uniqueIndex;not null;size:50"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRole binds one account to one role. Deactivated rows stay behind as
// assignment history.
type UserRole struct {
	infra.Base
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
