package report

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	infra "github.com/splitmoney/splitmoney/infra/repository"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	reporeport "github.com/splitmoney/splitmoney/pkg/repository/report"
)

type repository struct {
	db *gorm.DB
}

// New returns the gorm-backed export job repository.
func New(db *gorm.DB) reporeport.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.ExportJobCreate) error {
	filters := ""
	if len(create.Filters) > 0 {
		raw, err := json.Marshal(create.Filters)
		if err != nil {
			return err
		}
		filters = string(raw)
	}
	j := &ExportJob{
		ReportType:  string(create.ReportType),
		Format:      string(create.Format),
		Status:      string(domain.ExportPending),
		Filters:     filters,
		RequestedBy: create.RequestedBy,
	}
	j.ID = create.ID
	j.IsActive = true
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.ExportJobRead, error) {
	var j ExportJob
	err := r.db.WithContext(ctx).Scopes(infra.Active).
		First(&j, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&j), nil
}

func (r *repository) List(ctx context.Context, page, pageSize int) ([]*dto.ExportJobRead, int64, error) {
	q := r.db.WithContext(ctx).Model(&ExportJob{}).Scopes(infra.Active)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []ExportJob
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.ExportJobRead, 0, len(jobs))
	for i := range jobs {
		result = append(result, mapModelToDTO(&jobs[i]))
	}
	return result, total, nil
}

func mapModelToDTO(j *ExportJob) *dto.ExportJobRead {
	var filters map[string]string
	if j.Filters != "" {
		_ = json.Unmarshal([]byte(j.Filters), &filters)
	}
	return &dto.ExportJobRead{
		ID:          j.ID,
		ReportType:  domain.ReportType(j.ReportType),
		Format:      domain.ExportFormat(j.Format),
		Status:      domain.ExportStatus(j.Status),
		Filters:     filters,
		FilePath:    j.FilePath,
		Message:     j.Message,
		RequestedBy: j.RequestedBy,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

var _ reporeport.Repository = (*repository)(nil)
