// Package user defines the persistence contract for accounts.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/dto"
)

// Repository is the account store. Read methods only return active,
// non-deleted rows; soft-deleted accounts behave as absent.
type Repository interface {
	Create(ctx context.Context, create *dto.UserCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)
	List(ctx context.Context, search string, page, pageSize int) ([]*dto.UserRead, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountActive(ctx context.Context) (int64, error)

	// OTP state. SetOtp overwrites any prior code; ClearOtp removes code and
	// issuance timestamp after a successful verification.
	SetOtp(ctx context.Context, id uuid.UUID, code string, issuedAt time.Time) error
	ClearOtp(ctx context.Context, id uuid.UUID) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
