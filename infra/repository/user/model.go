package user

import (
	"time"

	infra "github.com/splitmoney/splitmoney/infra/repository"
)

// User represents an account record in the database.
type User struct {
	infra.Base
	FullName      string `gorm:"not null;size:255"`
	Email         string `gorm:"uniqueIndex;not null;size:255"`
	ContactNo     string `gorm:"size:15"`
	PasswordHash  string `gorm:"not null;size:255"`
	Status        int    `gorm:"not null;default:1"`
	EmailVerified bool   `gorm:"not null;default:false"`

	// At most one OTP is meaningful at a time; both fields are overwritten
	// on generation and cleared together on successful verification.
	OtpCode      *string `gorm:"size:6"`
	OtpCreatedAt *time.Time

	LastLogin *time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
