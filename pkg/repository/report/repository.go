// Package report defines the persistence contract for export jobs.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/dto"
)

// Repository tracks report export requests. The API only creates and reads
// jobs; status transitions belong to the offline worker.
type Repository interface {
	Create(ctx context.Context, create *dto.ExportJobCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.ExportJobRead, error)
	List(ctx context.Context, page, pageSize int) ([]*dto.ExportJobRead, int64, error)
}
