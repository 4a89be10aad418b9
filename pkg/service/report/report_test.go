package report_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	reportsvc "github.com/splitmoney/splitmoney/pkg/service/report"
)

// stubExports is an in-memory export job store.
type stubExports struct {
	jobs map[uuid.UUID]*dto.ExportJobRead
}

func newStubExports() *stubExports {
	return &stubExports{jobs: make(map[uuid.UUID]*dto.ExportJobRead)}
}

func (s *stubExports) Create(_ context.Context, create *dto.ExportJobCreate) error {
	s.jobs[create.ID] = &dto.ExportJobRead{
		ID:          create.ID,
		ReportType:  create.ReportType,
		Format:      create.Format,
		Status:      domain.ExportPending,
		Filters:     create.Filters,
		RequestedBy: create.RequestedBy,
		CreatedAt:   time.Now(),
	}
	return nil
}

func (s *stubExports) Get(_ context.Context, id uuid.UUID) (*dto.ExportJobRead, error) {
	return s.jobs[id], nil
}

func (s *stubExports) List(_ context.Context, _, _ int) ([]*dto.ExportJobRead, int64, error) {
	var out []*dto.ExportJobRead
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, int64(len(out)), nil
}

// stubEvents returns canned event aggregations.
type stubEvents struct {
	counts     map[string]int64
	organizers []*dto.OrganizerStat
}

func (s *stubEvents) CountsByStatus(_ context.Context, _, _ time.Time) (map[string]int64, error) {
	return s.counts, nil
}

func (s *stubEvents) TopOrganizers(_ context.Context, _, _ time.Time, limit int) ([]*dto.OrganizerStat, error) {
	if len(s.organizers) > limit {
		return s.organizers[:limit], nil
	}
	return s.organizers, nil
}

func (s *stubEvents) Create(_ context.Context, _ *dto.EventCreate) error { return nil }
func (s *stubEvents) Get(_ context.Context, _ uuid.UUID) (*dto.EventRead, error) {
	return nil, nil
}
func (s *stubEvents) List(_ context.Context, _ *dto.EventFilter, _, _ int) ([]*dto.EventRead, int64, error) {
	return nil, 0, nil
}
func (s *stubEvents) Update(_ context.Context, _ uuid.UUID, _ *dto.EventUpdate) error { return nil }
func (s *stubEvents) UpdateStatus(_ context.Context, _ uuid.UUID, _ domain.EventStatus) error {
	return nil
}
func (s *stubEvents) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubEvents) CountActive(_ context.Context) (int64, error)    { return 0, nil }
func (s *stubEvents) CountByCreator(_ context.Context, _ uuid.UUID) (int64, error) {
	return 3, nil
}

// stubTxns returns canned ledger aggregations.
type stubTxns struct {
	completed decimal.Decimal
	pending   decimal.Decimal
	failed    int64
	trend     []*dto.TrendPoint
	methods   []*dto.MethodSplit
}

func (s *stubTxns) SumByStatusInRange(_ context.Context, _, _ time.Time, status domain.TransactionStatus) (decimal.Decimal, error) {
	if status == domain.TxnCompleted {
		return s.completed, nil
	}
	return s.pending, nil
}

func (s *stubTxns) CountByStatus(_ context.Context, _, _ time.Time, _ domain.TransactionStatus) (int64, error) {
	return s.failed, nil
}

func (s *stubTxns) Trend(_ context.Context, _, _ time.Time, _ string) ([]*dto.TrendPoint, error) {
	return s.trend, nil
}

func (s *stubTxns) MethodSplit(_ context.Context, _, _ time.Time) ([]*dto.MethodSplit, error) {
	return s.methods, nil
}

func (s *stubTxns) Create(_ context.Context, _ *dto.TransactionCreate) error { return nil }
func (s *stubTxns) Get(_ context.Context, _ uuid.UUID) (*dto.TransactionRead, error) {
	return nil, nil
}
func (s *stubTxns) List(_ context.Context, _ *dto.TransactionFilter, _, _ int) ([]*dto.TransactionRead, int64, error) {
	return nil, 0, nil
}
func (s *stubTxns) Update(_ context.Context, _ uuid.UUID, _ *dto.TransactionUpdate) error {
	return nil
}
func (s *stubTxns) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubTxns) SumByStatus(_ context.Context, _ uuid.UUID, _ domain.TransactionStatus) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (s *stubTxns) EventSummary(_ context.Context, _ uuid.UUID) (*dto.EventCollectionSummary, error) {
	return nil, nil
}
func (s *stubTxns) DistinctContributors(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubTxns) LatestPerContributor(_ context.Context, _ uuid.UUID) ([]*dto.TransactionRead, error) {
	return nil, nil
}
func (s *stubTxns) CountJoinedEvents(_ context.Context, _ uuid.UUID) (int64, error) {
	return 2, nil
}
func (s *stubTxns) SumByUser(_ context.Context, _ uuid.UUID, status domain.TransactionStatus) (decimal.Decimal, error) {
	if status == domain.TxnCompleted {
		return s.completed, nil
	}
	return s.pending, nil
}

func newService(events *stubEvents, txns *stubTxns, exports *stubExports) *reportsvc.Service {
	if events == nil {
		events = &stubEvents{}
	}
	if txns == nil {
		txns = &stubTxns{}
	}
	if exports == nil {
		exports = newStubExports()
	}
	return reportsvc.New(events, txns, exports, slog.Default())
}

func TestAdminSummary(t *testing.T) {
	t.Parallel()
	events := &stubEvents{
		counts:     map[string]int64{"active": 4, "completed": 2},
		organizers: []*dto.OrganizerStat{{FullName: "Top Organizer", Events: 9}},
	}
	txns := &stubTxns{
		completed: decimal.NewFromInt(5000),
		pending:   decimal.NewFromInt(750),
		failed:    3,
		trend:     []*dto.TrendPoint{{Period: "2026-08-01", Amount: decimal.NewFromInt(5000)}},
		methods:   []*dto.MethodSplit{{Method: "card", Total: decimal.NewFromInt(5000), Count: 12}},
	}
	svc := newService(events, txns, nil)

	report, err := svc.AdminSummary(context.Background(), time.Time{}, time.Time{}, "weekly-ish")
	require.NoError(t, err)
	assert.Equal(t, "day", report.Interval)
	assert.True(t, report.CompletedTotal.Equal(decimal.NewFromInt(5000)))
	assert.True(t, report.PendingTotal.Equal(decimal.NewFromInt(750)))
	assert.EqualValues(t, 3, report.FailedCount)
	assert.EqualValues(t, 4, report.EventCounts["active"])
	require.Len(t, report.TopOrganizers, 1)
	require.Len(t, report.PaymentMethodSplit, 1)
	assert.Equal(t, "card", report.PaymentMethodSplit[0].Method)
}

func TestAdminSummary_InvertedRange(t *testing.T) {
	t.Parallel()
	svc := newService(nil, nil, nil)

	from := time.Now()
	to := from.Add(-24 * time.Hour)
	_, err := svc.AdminSummary(context.Background(), from, to, "day")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserSummary(t *testing.T) {
	t.Parallel()
	txns := &stubTxns{
		completed: decimal.NewFromInt(300),
		pending:   decimal.NewFromInt(50),
	}
	svc := newService(nil, txns, nil)

	report, err := svc.UserSummary(context.Background(), uuid.New(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, report.CreatedEvents)
	assert.EqualValues(t, 2, report.JoinedEvents)
	assert.True(t, report.ContributedTotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.PendingTotal.Equal(decimal.NewFromInt(50)))
}

func TestRequestExport(t *testing.T) {
	t.Parallel()
	exports := newStubExports()
	svc := newService(nil, nil, exports)

	job, err := svc.RequestExport(
		context.Background(),
		domain.ReportPayments,
		domain.FormatCSV,
		map[string]string{"status": "completed"},
		uuid.New(),
	)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, job.Status)
	assert.Equal(t, domain.ReportPayments, job.ReportType)
	assert.Equal(t, "completed", job.Filters["status"])
}

func TestRequestExport_BadType(t *testing.T) {
	t.Parallel()
	exports := newStubExports()
	svc := newService(nil, nil, exports)

	_, err := svc.RequestExport(context.Background(), "everything", domain.FormatCSV, nil, uuid.New())
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, exports.jobs)
}

func TestGetExport_NotFound(t *testing.T) {
	t.Parallel()
	svc := newService(nil, nil, nil)

	_, err := svc.GetExport(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
