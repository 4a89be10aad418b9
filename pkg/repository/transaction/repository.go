// Package transaction defines the persistence contract for the ledger.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
)

// Repository is the contribution ledger. Every read and aggregation filters
// out soft-deleted rows; the creation timestamp is the transaction time and
// is immutable.
type Repository interface {
	Create(ctx context.Context, create *dto.TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	List(ctx context.Context, filter *dto.TransactionFilter, page, pageSize int) ([]*dto.TransactionRead, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *dto.TransactionUpdate) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// SumByStatus totals amounts for one event, or globally when eventID is
	// uuid.Nil.
	SumByStatus(ctx context.Context, eventID uuid.UUID, status domain.TransactionStatus) (decimal.Decimal, error)
	EventSummary(ctx context.Context, eventID uuid.UUID) (*dto.EventCollectionSummary, error)
	DistinctContributors(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	// LatestPerContributor returns the newest entry per (event, account)
	// pair for status display.
	LatestPerContributor(ctx context.Context, eventID uuid.UUID) ([]*dto.TransactionRead, error)

	// Per-account aggregations for dashboards and reports.
	CountJoinedEvents(ctx context.Context, userID uuid.UUID) (int64, error)
	SumByUser(ctx context.Context, userID uuid.UUID, status domain.TransactionStatus) (decimal.Decimal, error)

	// Report aggregations over a date range (inclusive).
	Trend(ctx context.Context, from, to time.Time, interval string) ([]*dto.TrendPoint, error)
	MethodSplit(ctx context.Context, from, to time.Time) ([]*dto.MethodSplit, error)
	CountByStatus(ctx context.Context, from, to time.Time, status domain.TransactionStatus) (int64, error)
	SumByStatusInRange(ctx context.Context, from, to time.Time, status domain.TransactionStatus) (decimal.Decimal, error)
}
