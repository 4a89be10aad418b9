package event_test

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
	eventsvc "github.com/splitmoney/splitmoney/pkg/service/event"
)

// stubEvents is an in-memory event store for service tests.
type stubEvents struct {
	events map[uuid.UUID]*dto.EventRead
}

func newStubEvents() *stubEvents {
	return &stubEvents{events: make(map[uuid.UUID]*dto.EventRead)}
}

func (s *stubEvents) Create(_ context.Context, create *dto.EventCreate) error {
	s.events[create.ID] = &dto.EventRead{
		ID:            create.ID,
		Title:         create.Title,
		Category:      create.Category,
		EventDate:     create.EventDate,
		StartDateTime: create.StartDateTime,
		EndDateTime:   create.EndDateTime,
		DuePayDate:    create.DuePayDate,
		EventAmount:   create.EventAmount,
		PersonsCount:  create.PersonsCount,
		Status:        domain.EventDraft,
		CreatedBy:     create.CreatedBy,
	}
	return nil
}

func (s *stubEvents) Get(_ context.Context, id uuid.UUID) (*dto.EventRead, error) {
	return s.events[id], nil
}

func (s *stubEvents) List(_ context.Context, _ *dto.EventFilter, _, _ int) ([]*dto.EventRead, int64, error) {
	return nil, 0, nil
}

func (s *stubEvents) Update(_ context.Context, _ uuid.UUID, _ *dto.EventUpdate) error {
	return nil
}

func (s *stubEvents) UpdateStatus(_ context.Context, id uuid.UUID, status domain.EventStatus) error {
	s.events[id].Status = status
	return nil
}

func (s *stubEvents) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(s.events, id)
	return nil
}

func (s *stubEvents) CountActive(_ context.Context) (int64, error) { return 0, nil }

func (s *stubEvents) CountByCreator(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil }

func (s *stubEvents) CountsByStatus(_ context.Context, _, _ time.Time) (map[string]int64, error) {
	return nil, nil
}

func (s *stubEvents) TopOrganizers(_ context.Context, _, _ time.Time, _ int) ([]*dto.OrganizerStat, error) {
	return nil, nil
}

// stubUsers resolves accounts for summaries.
type stubUsers struct {
	users map[uuid.UUID]*dto.UserRead
}

func (s *stubUsers) Get(_ context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return s.users[id], nil
}

func (s *stubUsers) Create(_ context.Context, _ *dto.UserCreate) error { return nil }
func (s *stubUsers) GetByEmail(_ context.Context, _ string) (*dto.UserRead, error) {
	return nil, nil
}
func (s *stubUsers) List(_ context.Context, _ string, _, _ int) ([]*dto.UserRead, int64, error) {
	return nil, 0, nil
}
func (s *stubUsers) Update(_ context.Context, _ uuid.UUID, _ *dto.UserUpdate) error { return nil }
func (s *stubUsers) SoftDelete(_ context.Context, _ uuid.UUID) error                { return nil }
func (s *stubUsers) ExistsByEmail(_ context.Context, _ string) (bool, error)        { return false, nil }
func (s *stubUsers) CountActive(_ context.Context) (int64, error)                   { return 0, nil }
func (s *stubUsers) SetOtp(_ context.Context, _ uuid.UUID, _ string, _ time.Time) error {
	return nil
}
func (s *stubUsers) ClearOtp(_ context.Context, _ uuid.UUID) error          { return nil }
func (s *stubUsers) MarkEmailVerified(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubUsers) SetLastLogin(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return nil
}

// stubLedger returns canned aggregation results.
type stubLedger struct {
	collected    decimal.Decimal
	contributors []uuid.UUID
}

func (s *stubLedger) SumByStatus(_ context.Context, _ uuid.UUID, _ domain.TransactionStatus) (decimal.Decimal, error) {
	return s.collected, nil
}

func (s *stubLedger) DistinctContributors(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return s.contributors, nil
}

func validCreate(createdBy uuid.UUID) *dto.EventCreate {
	now := time.Now()
	return &dto.EventCreate{
		Title:         "Team dinner",
		Category:      domain.CategoryRestaurant,
		EventDate:     now,
		StartDateTime: now.Add(19 * time.Hour),
		EndDateTime:   now.Add(22 * time.Hour),
		DuePayDate:    now.Add(72 * time.Hour),
		EventAmount:   decimal.NewFromInt(1000),
		PersonsCount:  4,
		CreatedBy:     createdBy,
	}
}

func newService(events *stubEvents, users *stubUsers, ledger *stubLedger) *eventsvc.Service {
	if users == nil {
		users = &stubUsers{users: map[uuid.UUID]*dto.UserRead{}}
	}
	if ledger == nil {
		ledger = &stubLedger{}
	}
	return eventsvc.New(events, users, ledger, slog.Default())
}

func TestCreate_StartsInDraft(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	svc := newService(events, nil, nil)

	e, err := svc.Create(context.Background(), validCreate(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, domain.EventDraft, e.Status)
}

func TestCreate_DueDateBeforeEventDate(t *testing.T) {
	t.Parallel()
	svc := newService(newStubEvents(), nil, nil)

	create := validCreate(uuid.New())
	create.DuePayDate = create.EventDate.Add(-24 * time.Hour)
	_, err := svc.Create(context.Background(), create)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	svc := newService(newStubEvents(), nil, nil)

	create := validCreate(uuid.New())
	create.EventAmount = decimal.Zero
	_, err := svc.Create(context.Background(), create)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_StartAfterEnd(t *testing.T) {
	t.Parallel()
	svc := newService(newStubEvents(), nil, nil)

	create := validCreate(uuid.New())
	create.StartDateTime = create.EndDateTime.Add(3 * time.Hour)
	_, err := svc.Create(context.Background(), create)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_StartAfterEnd(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	svc := newService(events, nil, nil)
	e, err := svc.Create(context.Background(), validCreate(uuid.New()))
	require.NoError(t, err)

	late := e.EndDateTime.Add(time.Hour)
	_, err = svc.Update(context.Background(), e.ID, &dto.EventUpdate{StartDateTime: &late})
	require.ErrorIs(t, err, domain.ErrValidation)

	earlier := e.StartDateTime.Add(-time.Hour)
	_, err = svc.Update(context.Background(), e.ID, &dto.EventUpdate{EndDateTime: &earlier})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreate_RejectsBadCategory(t *testing.T) {
	t.Parallel()
	svc := newService(newStubEvents(), nil, nil)

	create := validCreate(uuid.New())
	create.Category = "concert"
	_, err := svc.Create(context.Background(), create)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	svc := newService(events, nil, nil)
	e, err := svc.Create(context.Background(), validCreate(uuid.New()))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), e.ID, "archived")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSummary(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	creator := &dto.UserRead{ID: uuid.New(), FullName: "Creator", Email: "creator@example.com"}
	member := &dto.UserRead{ID: uuid.New(), FullName: "Member", Email: "member@example.com"}
	users := &stubUsers{users: map[uuid.UUID]*dto.UserRead{creator.ID: creator, member.ID: member}}
	ledger := &stubLedger{
		collected:    decimal.NewFromInt(250),
		contributors: []uuid.UUID{member.ID},
	}
	svc := newService(events, users, ledger)

	e, err := svc.Create(context.Background(), validCreate(creator.ID))
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background(), e.ID)
	require.NoError(t, err)
	assert.True(t, summary.CollectedAmount.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(1000)))
	require.Len(t, summary.Members, 1)
	assert.Equal(t, "Member", summary.Members[0].FullName)
	require.NotNil(t, summary.CreatedBy)
	assert.Equal(t, "Creator", summary.CreatedBy.FullName)
}

func TestShareLink(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	svc := newService(events, nil, nil)
	e, err := svc.Create(context.Background(), validCreate(uuid.New()))
	require.NoError(t, err)

	link, err := svc.ShareLink(context.Background(), e.ID)
	require.NoError(t, err)
	assert.True(t, link.PerPersonAmount.Equal(decimal.NewFromInt(250)))
	assert.True(t, link.RoundingRemainder.IsZero())
	assert.Contains(t, link.ShareURL, "/join/event?")
	assert.Contains(t, link.ShareURL, e.ID.String())
}

func TestShareLink_UnevenSplit(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	svc := newService(events, nil, nil)
	create := validCreate(uuid.New())
	create.PersonsCount = 3
	e, err := svc.Create(context.Background(), create)
	require.NoError(t, err)

	link, err := svc.ShareLink(context.Background(), e.ID)
	require.NoError(t, err)
	assert.True(t, link.PerPersonAmount.Equal(decimal.RequireFromString("333.33")))
	assert.True(t, link.RoundingRemainder.Equal(decimal.RequireFromString("0.01")))
}

func TestJoinPreview_StatusGating(t *testing.T) {
	t.Parallel()
	events := newStubEvents()
	svc := newService(events, nil, nil)
	e, err := svc.Create(context.Background(), validCreate(uuid.New()))
	require.NoError(t, err)

	// draft accepts joiners
	preview, err := svc.JoinPreview(context.Background(), e.ID.String(), "250.00")
	require.NoError(t, err)
	assert.True(t, preview.Amount.Equal(decimal.NewFromInt(250)))

	_, err = svc.UpdateStatus(context.Background(), e.ID, domain.EventClosed)
	require.NoError(t, err)

	_, err = svc.JoinPreview(context.Background(), e.ID.String(), "250.00")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestJoinPreview_BadLink(t *testing.T) {
	t.Parallel()
	svc := newService(newStubEvents(), nil, nil)

	_, err := svc.JoinPreview(context.Background(), "not-a-uuid", "250.00")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.JoinPreview(context.Background(), uuid.New().String(), "-5")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestJoinPreview_UnknownEvent(t *testing.T) {
	t.Parallel()
	svc := newService(newStubEvents(), nil, nil)

	_, err := svc.JoinPreview(context.Background(), uuid.New().String(), "250.00")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
