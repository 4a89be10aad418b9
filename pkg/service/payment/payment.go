// Package payment provides business logic for the contribution ledger.
package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repoevent "github.com/splitmoney/splitmoney/pkg/repository/event"
	repotxn "github.com/splitmoney/splitmoney/pkg/repository/transaction"
)

type Service struct {
	txns   repotxn.Repository
	events repoevent.Repository
	logger *slog.Logger
}

func New(
	txns repotxn.Repository,
	events repoevent.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{txns: txns, events: events, logger: logger}
}

// Create records a ledger entry. The amount must be positive and the target
// event must exist; kind defaults to contribution and status to pending.
func (s *Service) Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error) {
	log := s.logger.With("context", "Create", "eventID", create.EventID, "userID", create.UserID)
	log.Debug("Create called")

	if create.Amount.LessThanOrEqual(decimal.Zero) {
		log.Warn("Create failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}
	if create.Kind == "" {
		create.Kind = domain.KindContribution
	}
	if !create.Kind.Valid() {
		return nil, domain.ErrValidation
	}
	if create.Status == "" {
		create.Status = domain.TxnPending
	}
	if !create.Status.Valid() {
		return nil, domain.ErrValidation
	}

	e, err := s.events.Get(ctx, create.EventID)
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	if e == nil {
		log.Warn("Create failed", "error", domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}

	create.ID = uuid.New()
	if err = s.txns.Create(ctx, create); err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	t, err := s.txns.Get(ctx, create.ID)
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("Create successful", "transactionID", create.ID)
	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	t, err := s.txns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *Service) List(
	ctx context.Context,
	filter *dto.TransactionFilter,
	page, pageSize int,
) ([]*dto.TransactionRead, int64, error) {
	log := s.logger.With("context", "List")
	log.Debug("List called", "page", page)
	if filter != nil {
		if filter.Status != "" && !filter.Status.Valid() {
			return nil, 0, domain.ErrValidation
		}
		if filter.Kind != "" && !filter.Kind.Valid() {
			return nil, 0, domain.ErrValidation
		}
	}
	return s.txns.List(ctx, filter, page, pageSize)
}

// Update changes status, description or payment method. The amount is
// immutable after creation.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	update *dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	log := s.logger.With("context", "Update", "transactionID", id)
	log.Debug("Update called")

	existing, err := s.txns.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	if existing == nil {
		log.Warn("Update failed", "error", domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, domain.ErrValidation
	}

	if err = s.txns.Update(ctx, id, update); err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	t, err := s.txns.Get(ctx, id)
	if err != nil {
		log.Error("Update failed", "error", err)
		return nil, err
	}
	log.Info("Update successful", "transactionID", id)
	return t, nil
}

func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("context", "SoftDelete", "transactionID", id)
	log.Debug("SoftDelete called")

	existing, err := s.txns.Get(ctx, id)
	if err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err = s.txns.SoftDelete(ctx, id); err != nil {
		log.Error("SoftDelete failed", "error", err)
		return err
	}
	log.Info("SoftDelete successful")
	return nil
}

// EventSummary aggregates an event's ledger by status.
func (s *Service) EventSummary(ctx context.Context, eventID uuid.UUID) (*dto.EventCollectionSummary, error) {
	log := s.logger.With("context", "EventSummary", "eventID", eventID)
	log.Debug("EventSummary called")

	e, err := s.events.Get(ctx, eventID)
	if err != nil {
		log.Error("EventSummary failed", "error", err)
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	summary, err := s.txns.EventSummary(ctx, eventID)
	if err != nil {
		log.Error("EventSummary failed", "error", err)
		return nil, err
	}
	return summary, nil
}

// LatestByContributor returns each contributor's newest ledger entry for an
// event, used for per-member payment status display.
func (s *Service) LatestByContributor(ctx context.Context, eventID uuid.UUID) ([]*dto.TransactionRead, error) {
	log := s.logger.With("context", "LatestByContributor", "eventID", eventID)
	log.Debug("LatestByContributor called")
	return s.txns.LatestPerContributor(ctx, eventID)
}

// UserHistory lists an account's ledger entries across events.
func (s *Service) UserHistory(
	ctx context.Context,
	userID uuid.UUID,
	page, pageSize int,
) ([]*dto.TransactionRead, int64, error) {
	log := s.logger.With("context", "UserHistory", "userID", userID)
	log.Debug("UserHistory called", "page", page)
	return s.txns.List(ctx, &dto.TransactionFilter{UserID: userID}, page, pageSize)
}
