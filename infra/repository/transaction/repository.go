package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	infra "github.com/splitmoney/splitmoney/infra/repository"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repotxn "github.com/splitmoney/splitmoney/pkg/repository/transaction"
)

type repository struct {
	db *gorm.DB
}

// New returns the gorm-backed ledger repository.
func New(db *gorm.DB) repotxn.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	t := &Transaction{
		EventID:       create.EventID,
		UserID:        create.UserID,
		Amount:        create.Amount,
		Kind:          string(create.Kind),
		Status:        string(create.Status),
		Description:   create.Description,
		PaymentMethod: create.PaymentMethod,
	}
	t.ID = create.ID
	t.IsActive = true
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var t Transaction
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&t), nil
}

func (r *repository) List(
	ctx context.Context,
	filter *dto.TransactionFilter,
	page, pageSize int,
) ([]*dto.TransactionRead, int64, error) {
	q := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active)

	if filter != nil {
		if filter.EventID != uuid.Nil {
			q = q.Where("event_id = ?", filter.EventID)
		}
		if filter.UserID != uuid.Nil {
			q = q.Where("user_id = ?", filter.UserID)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", string(filter.Status))
		}
		if filter.Kind != "" {
			q = q.Where("transaction_type = ?", string(filter.Kind))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []Transaction
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.TransactionRead, 0, len(txns))
	for i := range txns {
		result = append(result, mapModelToDTO(&txns[i]))
	}
	return result, total, nil
}

// Update only touches status, description and payment method; the amount and
// creation timestamp are immutable after insert.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update *dto.TransactionUpdate) error {
	updates := make(map[string]any)
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.PaymentMethod != nil {
		updates["payment_method"] = *update.PaymentMethod
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).Updates(updates).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).Update("is_active", false).Error
}

func (r *repository) SumByStatus(
	ctx context.Context,
	eventID uuid.UUID,
	status domain.TransactionStatus,
) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("status = ?", string(status))
	if eventID != uuid.Nil {
		q = q.Where("event_id = ?", eventID)
	}
	return sumAmount(q)
}

func (r *repository) EventSummary(ctx context.Context, eventID uuid.UUID) (*dto.EventCollectionSummary, error) {
	type row struct {
		Status string
		Total  decimal.Decimal
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Select("status, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &dto.EventCollectionSummary{
		EventID:         eventID,
		TotalAmount:     decimal.Zero,
		CompletedAmount: decimal.Zero,
		PendingAmount:   decimal.Zero,
		FailedAmount:    decimal.Zero,
	}
	for _, row := range rows {
		summary.TotalAmount = summary.TotalAmount.Add(row.Total)
		summary.TotalTransactions += row.Count
		switch domain.TransactionStatus(row.Status) {
		case domain.TxnCompleted:
			summary.CompletedAmount = row.Total
			summary.CompletedCount = row.Count
		case domain.TxnPending:
			summary.PendingAmount = row.Total
			summary.PendingCount = row.Count
		case domain.TxnFailed:
			summary.FailedAmount = row.Total
			summary.FailedCount = row.Count
		}
	}

	err = r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("event_id = ?", eventID).
		Distinct("user_id").
		Count(&summary.UniqueContributors).Error
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *repository) DistinctContributors(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("event_id = ?", eventID).
		Distinct().
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *repository) LatestPerContributor(ctx context.Context, eventID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txns []Transaction
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (user_id) *
		     FROM event_collection_transactions
		     WHERE event_id = ? AND is_active = true
		     ORDER BY user_id, created_at DESC`, eventID).
		Scan(&txns).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txns))
	for i := range txns {
		result = append(result, mapModelToDTO(&txns[i]))
	}
	return result, nil
}

func (r *repository) CountJoinedEvents(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("user_id = ?", userID).
		Distinct("event_id").
		Count(&count).Error
	return count, err
}

func (r *repository) SumByUser(
	ctx context.Context,
	userID uuid.UUID,
	status domain.TransactionStatus,
) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	return sumAmount(q)
}

func (r *repository) Trend(
	ctx context.Context,
	from, to time.Time,
	interval string,
) ([]*dto.TrendPoint, error) {
	trunc := truncUnit(interval)
	type row struct {
		Bucket time.Time
		Total  decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Select("date_trunc(?, created_at) AS bucket, COALESCE(SUM(amount), 0) AS total", trunc).
		Where("status = ?", string(domain.TxnCompleted)).
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	points := make([]*dto.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, &dto.TrendPoint{
			Period: row.Bucket.Format("2006-01-02"),
			Amount: row.Total,
		})
	}
	return points, nil
}

func (r *repository) MethodSplit(ctx context.Context, from, to time.Time) ([]*dto.MethodSplit, error) {
	type row struct {
		Method string
		Total  decimal.Decimal
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Select("COALESCE(NULLIF(payment_method, ''), 'unknown') AS method, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("method").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.MethodSplit, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.MethodSplit{
			Method: row.Method,
			Total:  row.Total,
			Count:  row.Count,
		})
	}
	return result, nil
}

func (r *repository) CountByStatus(
	ctx context.Context,
	from, to time.Time,
	status domain.TransactionStatus,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("status = ?", string(status)).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *repository) SumByStatusInRange(
	ctx context.Context,
	from, to time.Time,
	status domain.TransactionStatus,
) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&Transaction{}).Scopes(infra.Active).
		Where("status = ?", string(status)).
		Where("created_at BETWEEN ? AND ?", from, to)
	return sumAmount(q)
}

func sumAmount(q *gorm.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func truncUnit(interval string) string {
	switch interval {
	case "week":
		return "week"
	case "month":
		return "month"
	default:
		return "day"
	}
}

func mapModelToDTO(t *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:            t.ID,
		EventID:       t.EventID,
		UserID:        t.UserID,
		Amount:        t.Amount,
		Kind:          domain.TransactionKind(t.Kind),
		Status:        domain.TransactionStatus(t.Status),
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
	}
}

var _ repotxn.Repository = (*repository)(nil)
