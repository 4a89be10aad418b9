// Package event defines the persistence contract for events.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
)

// Repository is the event store. Reads exclude soft-deleted rows.
type Repository interface {
	Create(ctx context.Context, create *dto.EventCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.EventRead, error)
	List(ctx context.Context, filter *dto.EventFilter, page, pageSize int) ([]*dto.EventRead, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *dto.EventUpdate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Dashboard and report aggregations.
	CountActive(ctx context.Context) (int64, error)
	CountByCreator(ctx context.Context, userID uuid.UUID) (int64, error)
	CountsByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error)
	TopOrganizers(ctx context.Context, from, to time.Time, limit int) ([]*dto.OrganizerStat, error)
}
