// Package dashboard aggregates the stat cards for admin and account views.
package dashboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repoevent "github.com/splitmoney/splitmoney/pkg/repository/event"
	repotxn "github.com/splitmoney/splitmoney/pkg/repository/transaction"
	repouser "github.com/splitmoney/splitmoney/pkg/repository/user"
)

type Service struct {
	users  repouser.Repository
	events repoevent.Repository
	txns   repotxn.Repository
	logger *slog.Logger
}

func New(
	users repouser.Repository,
	events repoevent.Repository,
	txns repotxn.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{users: users, events: events, txns: txns, logger: logger}
}

// AdminStats backs the admin dashboard cards and the live stream.
func (s *Service) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	log := s.logger.With("context", "AdminStats")
	log.Debug("AdminStats called")

	stats := &dto.AdminStats{}
	var err error
	if stats.TotalUsers, err = s.users.CountActive(ctx); err != nil {
		log.Error("AdminStats failed", "error", err)
		return nil, err
	}
	if stats.ActiveEvents, err = s.events.CountActive(ctx); err != nil {
		log.Error("AdminStats failed", "error", err)
		return nil, err
	}
	if stats.TotalPayment, err = s.txns.SumByStatus(ctx, uuid.Nil, domain.TxnCompleted); err != nil {
		log.Error("AdminStats failed", "error", err)
		return nil, err
	}
	if stats.PendingPayment, err = s.txns.SumByStatus(ctx, uuid.Nil, domain.TxnPending); err != nil {
		log.Error("AdminStats failed", "error", err)
		return nil, err
	}
	return stats, nil
}

// UserStats backs the per-account dashboard cards.
func (s *Service) UserStats(ctx context.Context, userID uuid.UUID) (*dto.UserStats, error) {
	log := s.logger.With("context", "UserStats", "userID", userID)
	log.Debug("UserStats called")

	stats := &dto.UserStats{}
	var err error
	if stats.TotalCreatedEvents, err = s.events.CountByCreator(ctx, userID); err != nil {
		log.Error("UserStats failed", "error", err)
		return nil, err
	}
	if stats.TotalJoinedEvents, err = s.txns.CountJoinedEvents(ctx, userID); err != nil {
		log.Error("UserStats failed", "error", err)
		return nil, err
	}
	if stats.TotalWalletBalance, err = s.txns.SumByUser(ctx, userID, domain.TxnCompleted); err != nil {
		log.Error("UserStats failed", "error", err)
		return nil, err
	}
	return stats, nil
}
