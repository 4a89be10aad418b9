// Package event provides business logic for expense events: CRUD, status
// changes, summaries and share links.
package event

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repoevent "github.com/splitmoney/splitmoney/pkg/repository/event"
	repouser "github.com/splitmoney/splitmoney/pkg/repository/user"
	"github.com/splitmoney/splitmoney/pkg/split"
)

// Ledger is the slice of the contribution ledger the event service needs for
// summaries.
type Ledger interface {
	SumByStatus(ctx context.Context, eventID uuid.UUID, status domain.TransactionStatus) (decimal.Decimal, error)
	DistinctContributors(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
}

type Service struct {
	events repoevent.Repository
	users  repouser.Repository
	ledger Ledger
	logger *slog.Logger
}

func New(
	events repoevent.Repository,
	users repouser.Repository,
	ledger Ledger,
	logger *slog.Logger,
) *Service {
	return &Service{events: events, users: users, ledger: ledger, logger: logger}
}

// Create stores a new event in draft status. The due date may not precede
// the event date.
func (s *Service) Create(ctx context.Context, create *dto.EventCreate) (*dto.EventRead, error) {
	log := s.logger.With("context", "Create", "createdBy", create.CreatedBy)
	log.Debug("Create called", "title", create.Title)

	if create.Title == "" || !create.Category.Valid() {
		log.Warn("Create failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}
	if create.EventAmount.LessThanOrEqual(decimal.Zero) || create.PersonsCount < 1 {
		log.Warn("Create failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}
	if create.DuePayDate.Before(create.EventDate) {
		log.Warn("Create failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}
	if !create.StartDateTime.Before(create.EndDateTime) {
		log.Warn("Create failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}

	create.ID = uuid.New()
	if err := s.events.Create(ctx, create); err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	e, err := s.events.Get(ctx, create.ID)
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("Create successful", "eventID", create.ID)
	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.EventRead, error) {
	e, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *Service) List(
	ctx context.Context,
	filter *dto.EventFilter,
	page, pageSize int,
) ([]*dto.EventRead, int64, error) {
	log := s.logger.With("context", "List")
	log.Debug("List called", "page", page)
	if filter != nil && filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, domain.ErrValidation
	}
	return s.events.List(ctx, filter, page, pageSize)
}

func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.EventUpdate,
) (*dto.EventRead, error) {
	log := s.logger.With("context", "Update", "eventID", id)
	log.Debug("Update called")

	existing, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	if existing == nil {
		log.Warn("Update failed", "error", domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}
	if update.Category != nil && !update.Category.Valid() {
		return nil, domain.ErrValidation
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.ErrValidation
	}
	if update.EventAmount != nil && update.EventAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrValidation
	}
	if update.PersonsCount != nil && *update.PersonsCount < 1 {
		return nil, domain.ErrValidation
	}
	if update.StartDateTime != nil || update.EndDateTime != nil {
		start, end := existing.StartDateTime, existing.EndDateTime
		if update.StartDateTime != nil {
			start = *update.StartDateTime
		}
		if update.EndDateTime != nil {
			end = *update.EndDateTime
		}
		if !start.Before(end) {
			return nil, domain.ErrValidation
		}
	}

	if err = s.events.Update(ctx, id, update); err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	e, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	log.Info("Update successful", "eventID", id)
	return e, nil
}

// UpdateStatus is the status-only transition endpoint.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.EventStatus,
) (*dto.EventRead, error) {
	log := s.logger.With("context", "UpdateStatus", "eventID", id, "status", status)
	log.Debug("UpdateStatus called")

	if !status.Valid() {
		return nil, domain.ErrValidation
	}
	existing, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("UpdateStatus failed", "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err = s.events.UpdateStatus(ctx, id, status); err != nil {
		log.Error("UpdateStatus failed", "error", err)
		return nil, err
	}
	log.Info("UpdateStatus successful")
	return s.events.Get(ctx, id)
}

func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("context", "SoftDelete", "eventID", id)
	log.Debug("SoftDelete called")

	existing, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err = s.events.SoftDelete(ctx, id); err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	log.Info("SoftDelete successful")
	return nil
}

// Summary assembles the event view with its contributors and the completed
// collection total.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (*dto.EventSummary, error) {
	log := s.logger.With("context", "Summary", "eventID", id)
	log.Debug("Summary called")

	e, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("Summary failed", "error", err)
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	collected, err := s.ledger.SumByStatus(ctx, id, domain.TxnCompleted)
	if err != nil {
		log.Error("Summary failed", "error", err)
		return nil, err
	}
	contributorIDs, err := s.ledger.DistinctContributors(ctx, id)
	if err != nil {
		log.Error("Summary failed", "error", err)
		return nil, err
	}

	members := make([]dto.EventMember, 0, len(contributorIDs))
	for _, uid := range contributorIDs {
		u, err := s.users.Get(ctx, uid)
		if err != nil {
			log.Error("Summary failed", "error", err)
			return nil, err
		}
		if u == nil {
			continue // contributor soft-deleted since paying
		}
		members = append(members, dto.EventMember{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
		})
	}

	summary := &dto.EventSummary{
		Event:           e,
		Members:         members,
		CollectedAmount: collected,
		TotalAmount:     e.EventAmount,
		DueDate:         e.DuePayDate,
	}
	if creator, err := s.users.Get(ctx, e.CreatedBy); err == nil && creator != nil {
		summary.CreatedBy = &dto.EventMember{
			ID:       creator.ID,
			FullName: creator.FullName,
			Email:    creator.Email,
		}
	}
	log.Info("Summary successful", "members", len(members))
	return summary, nil
}

// ShareLink computes the per-person share and the join URL for an event.
func (s *Service) ShareLink(ctx context.Context, id uuid.UUID) (*dto.ShareLink, error) {
	log := s.logger.With("context", "ShareLink", "eventID", id)
	log.Debug("ShareLink called")

	e, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("ShareLink failed", "error", err)
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.PersonsCount < 1 {
		return nil, domain.ErrValidation
	}

	perPerson := split.PerPersonAmount(e.EventAmount, e.PersonsCount)
	return &dto.ShareLink{
		EventID:           e.ID,
		PerPersonAmount:   perPerson,
		TotalAmount:       e.EventAmount,
		PersonsCount:      e.PersonsCount,
		RoundingRemainder: split.RoundingRemainder(e.EventAmount, e.PersonsCount),
		ShareURL:          split.BuildShareLink(e.ID, perPerson),
	}, nil
}

// JoinPreview resolves a share link for an invitee. Only active and draft
// events accept new joiners.
func (s *Service) JoinPreview(ctx context.Context, eventID, amount string) (*dto.JoinPreview, error) {
	log := s.logger.With("context", "JoinPreview", "eventID", eventID)
	log.Debug("JoinPreview called")

	id, share, err := split.ParseShareLink(eventID, amount)
	if err != nil {
		log.Warn("JoinPreview failed", "error", err)
		return nil, domain.ErrValidation
	}
	e, err := s.events.Get(ctx, id)
	if err != nil {
		log.Error("JoinPreview failed", "error", err)
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !e.Status.Joinable() {
		log.Warn("JoinPreview failed", "error", domain.ErrValidation, "status", e.Status)
		return nil, domain.ErrValidation
	}
	return &dto.JoinPreview{Event: e, Amount: share}, nil
}
