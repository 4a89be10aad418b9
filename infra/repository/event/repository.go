package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	infra "github.com/splitmoney/splitmoney/infra/repository"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	repoevent "github.com/splitmoney/splitmoney/pkg/repository/event"
)

type repository struct {
	db *gorm.DB
}

// New returns the gorm-backed event repository.
func New(db *gorm.DB) repoevent.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.EventCreate) error {
	e := &Event{
		Title:         create.Title,
		Category:      string(create.Category),
		Description:   create.Description,
		EventDate:     create.EventDate,
		StartDateTime: create.StartDateTime,
		EndDateTime:   create.EndDateTime,
		DuePayDate:    create.DuePayDate,
		EventAmount:   create.EventAmount,
		Latitude:      create.Latitude,
		Longitude:     create.Longitude,
		PersonsCount:  create.PersonsCount,
		Status:        string(domain.EventDraft),
		CreatedBy:     create.CreatedBy,
	}
	e.ID = create.ID
	e.IsActive = true
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.EventRead, error) {
	var e Event
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&e), nil
}

func (r *repository) List(
	ctx context.Context,
	filter *dto.EventFilter,
	page, pageSize int,
) ([]*dto.EventRead, int64, error) {
	q := r.db.WithContext(ctx).Model(&Event{}).Scopes(infra.Active)

	if filter != nil {
		if filter.CreatedBy != uuid.Nil {
			q = q.Where("created_by = ?", filter.CreatedBy)
		}
		if filter.FromDate != nil {
			q = q.Where("event_date >= ?", *filter.FromDate)
		}
		if filter.ToDate != nil {
			q = q.Where("event_date <= ?", *filter.ToDate)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", string(filter.Status))
		}
		if filter.Category != "" {
			q = q.Where("category = ?", string(filter.Category))
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.EventRead, 0, len(events))
	for i := range events {
		result = append(result, mapModelToDTO(&events[i]))
	}
	return result, total, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, update *dto.EventUpdate) error {
	updates := make(map[string]any)
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Category != nil {
		updates["category"] = string(*update.Category)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.EventDate != nil {
		updates["event_date"] = *update.EventDate
	}
	if update.StartDateTime != nil {
		updates["start_date_time"] = *update.StartDateTime
	}
	if update.EndDateTime != nil {
		updates["end_date_time"] = *update.EndDateTime
	}
	if update.DuePayDate != nil {
		updates["due_pay_date"] = *update.DuePayDate
	}
	if update.EventAmount != nil {
		updates["event_amount"] = *update.EventAmount
	}
	if update.Latitude != nil {
		updates["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		updates["longitude"] = *update.Longitude
	}
	if update.PersonsCount != nil {
		updates["persons_count"] = *update.PersonsCount
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", id).Updates(updates).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EventStatus) error {
	return r.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", id).Update("status", string(status)).Error
}

func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", id).Update("is_active", false).Error
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Event{}).Scopes(infra.Active).
		Where("status <> ?", string(domain.EventCancelled)).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByCreator(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Event{}).Scopes(infra.Active).
		Where("created_by = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountsByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&Event{}).Scopes(infra.Active).
		Select("status, COUNT(*) AS count").
		Where("event_date BETWEEN ? AND ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	var total int64
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}
	counts["total"] = total
	return counts, nil
}

func (r *repository) TopOrganizers(
	ctx context.Context,
	from, to time.Time,
	limit int,
) ([]*dto.OrganizerStat, error) {
	var stats []*dto.OrganizerStat
	err := r.db.WithContext(ctx).Model(&Event{}).
		Select("events.created_by AS user_id, users.full_name, users.email, COUNT(events.id) AS events").
		Joins("JOIN users ON users.id = events.created_by").
		Where("events.is_active = ?", true).
		Where("events.event_date BETWEEN ? AND ?", from, to).
		Group("events.created_by, users.full_name, users.email").
		Order("events DESC").
		Limit(limit).
		Scan(&stats).Error
	return stats, err
}

func mapModelToDTO(e *Event) *dto.EventRead {
	return &dto.EventRead{
		ID:            e.ID,
		Title:         e.Title,
		Category:      domain.EventCategory(e.Category),
		Description:   e.Description,
		EventDate:     e.EventDate,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		DuePayDate:    e.DuePayDate,
		EventAmount:   e.EventAmount,
		Latitude:      e.Latitude,
		Longitude:     e.Longitude,
		PersonsCount:  e.PersonsCount,
		Status:        domain.EventStatus(e.Status),
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

var _ repoevent.Repository = (*repository)(nil)
