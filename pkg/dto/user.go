package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/domain"
)

// UserCreate represents the data needed to create a new account.
type UserCreate struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	ContactNo string
	Password  string // bcrypt hash, never plaintext
}

// UserUpdate represents the fields that can change on an account.
// Nil pointers are left untouched.
type UserUpdate struct {
	FullName  *string
	Email     *string
	ContactNo *string
	Password  *string
}

// UserRead is a read-optimized view of an account.
type UserRead struct {
	ID             uuid.UUID            `json:"id"`
	FullName       string               `json:"full_name"`
	Email          string               `json:"email"`
	ContactNo      string               `json:"contact_no,omitempty"`
	HashedPassword string               `json:"-"`
	Status         domain.AccountStatus `json:"status"`
	EmailVerified  bool                 `json:"email_verified"`
	OtpCode        string               `json:"-"`
	OtpCreatedAt   *time.Time           `json:"-"`
	LastLogin      *time.Time           `json:"last_login,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// RoleRead is a read view of a permission bucket.
type RoleRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
