// Package report builds date-ranged rollups and tracks export jobs.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repoevent "github.com/splitmoney/splitmoney/pkg/repository/event"
	reporeport "github.com/splitmoney/splitmoney/pkg/repository/report"
	repotxn "github.com/splitmoney/splitmoney/pkg/repository/transaction"
)

const topOrganizerLimit = 5

type Service struct {
	events  repoevent.Repository
	txns    repotxn.Repository
	exports reporeport.Repository
	logger  *slog.Logger
}

func New(
	events repoevent.Repository,
	txns repotxn.Repository,
	exports reporeport.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{events: events, txns: txns, exports: exports, logger: logger}
}

// normalizeRange fills missing bounds: a zero from means the epoch, a zero to
// means now. From must not follow to.
func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.After(to) {
		return from, to, domain.ErrValidation
	}
	return from, to, nil
}

func normalizeInterval(interval string) string {
	switch interval {
	case "week", "month":
		return interval
	default:
		return "day"
	}
}

// AdminSummary builds the platform-wide rollup over a date range with
// day, week or month trend buckets.
func (s *Service) AdminSummary(
	ctx context.Context,
	from, to time.Time,
	interval string,
) (*dto.AdminSummaryReport, error) {
	log := s.logger.With("context", "AdminSummary")
	log.Debug("AdminSummary called", "from", from, "to", to, "interval", interval)

	from, to, err := normalizeRange(from, to)
	if err != nil {
		log.Warn("AdminSummary failed", "error", err)
		return nil, err
	}
	interval = normalizeInterval(interval)

	report := &dto.AdminSummaryReport{
		Range:    dto.DateRange{From: from, To: to},
		Interval: interval,
	}
	if report.CompletedTotal, err = s.txns.SumByStatusInRange(ctx, from, to, domain.TxnCompleted); err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}
	if report.PendingTotal, err = s.txns.SumByStatusInRange(ctx, from, to, domain.TxnPending); err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}
	if report.FailedCount, err = s.txns.CountByStatus(ctx, from, to, domain.TxnFailed); err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}

	trend, err := s.txns.Trend(ctx, from, to, interval)
	if err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}
	report.CollectionsTrend = make([]dto.TrendPoint, 0, len(trend))
	for _, p := range trend {
		report.CollectionsTrend = append(report.CollectionsTrend, *p)
	}

	if report.EventCounts, err = s.events.CountsByStatus(ctx, from, to); err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}

	organizers, err := s.events.TopOrganizers(ctx, from, to, topOrganizerLimit)
	if err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}
	report.TopOrganizers = make([]dto.OrganizerStat, 0, len(organizers))
	for _, o := range organizers {
		report.TopOrganizers = append(report.TopOrganizers, *o)
	}

	methods, err := s.txns.MethodSplit(ctx, from, to)
	if err != nil {
		log.Error("AdminSummary failed", "error", err)
		return nil, err
	}
	report.PaymentMethodSplit = make([]dto.MethodSplit, 0, len(methods))
	for _, m := range methods {
		report.PaymentMethodSplit = append(report.PaymentMethodSplit, *m)
	}

	log.Info("AdminSummary successful")
	return report, nil
}

// UserSummary builds the per-account rollup over a date range.
func (s *Service) UserSummary(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) (*dto.UserSummaryReport, error) {
	log := s.logger.With("context", "UserSummary", "userID", userID)
	log.Debug("UserSummary called")

	from, to, err := normalizeRange(from, to)
	if err != nil {
		log.Warn("UserSummary failed", "error", err)
		return nil, err
	}

	report := &dto.UserSummaryReport{Range: dto.DateRange{From: from, To: to}}
	if report.CreatedEvents, err = s.events.CountByCreator(ctx, userID); err != nil {
		log.Error("UserSummary failed", "error", err)
		return nil, err
	}
	if report.JoinedEvents, err = s.txns.CountJoinedEvents(ctx, userID); err != nil {
		log.Error("UserSummary failed", "error", err)
		return nil, err
	}
	if report.ContributedTotal, err = s.txns.SumByUser(ctx, userID, domain.TxnCompleted); err != nil {
		log.Error("UserSummary failed", "error", err)
		return nil, err
	}
	if report.PendingTotal, err = s.txns.SumByUser(ctx, userID, domain.TxnPending); err != nil {
		log.Error("UserSummary failed", "error", err)
		return nil, err
	}
	log.Info("UserSummary successful")
	return report, nil
}

// RequestExport records an export job for the offline worker to pick up.
func (s *Service) RequestExport(
	ctx context.Context,
	reportType domain.ReportType,
	format domain.ExportFormat,
	filters map[string]string,
	requestedBy uuid.UUID,
) (*dto.ExportJobRead, error) {
	log := s.logger.With("context", "RequestExport", "requestedBy", requestedBy)
	log.Debug("RequestExport called", "reportType", reportType, "format", format)

	if !reportType.Valid() || !format.Valid() {
		log.Warn("RequestExport failed", "error", domain.ErrValidation)
		return nil, domain.ErrValidation
	}

	id := uuid.New()
	err := s.exports.Create(ctx, &dto.ExportJobCreate{
		ID:          id,
		ReportType:  reportType,
		Format:      format,
		Filters:     filters,
		RequestedBy: requestedBy,
	})
	if err != nil {
		log.Error("RequestExport failed", "error", err)
		return nil, err
	}
	job, err := s.exports.Get(ctx, id)
	if err != nil {
		log.Error("RequestExport failed", "error", err)
		return nil, err
	}
	log.Info("RequestExport successful", "jobID", id)
	return job, nil
}

func (s *Service) GetExport(ctx context.Context, id uuid.UUID) (*dto.ExportJobRead, error) {
	job, err := s.exports.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

func (s *Service) ListExports(
	ctx context.Context,
	page, pageSize int,
) ([]*dto.ExportJobRead, int64, error) {
	return s.exports.List(ctx, page, pageSize)
}
