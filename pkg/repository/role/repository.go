// Package role defines the persistence contract for roles and assignments.
package role

import (
	"context"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/dto"
)

// Repository manages roles and the user-role join. An account holds at most
// one active assignment: Assign deactivates every prior active assignment
// before inserting the new one (last writer wins).
type Repository interface {
	Create(ctx context.Context, id uuid.UUID, name string) error
	Get(ctx context.Context, id uuid.UUID) (*dto.RoleRead, error)
	GetByName(ctx context.Context, name string) (*dto.RoleRead, error)
	List(ctx context.Context) ([]*dto.RoleRead, error)
	Update(ctx context.Context, id uuid.UUID, name string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	Assign(ctx context.Context, userID, roleID uuid.UUID) error
	// ActiveRoleName resolves the account's single active assignment;
	// returns "" when none exists.
	ActiveRoleName(ctx context.Context, userID uuid.UUID) (string, error)
	// ActiveAssignmentCount supports the one-active-assignment invariant.
	ActiveAssignmentCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
