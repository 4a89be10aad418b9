package report

import (
	"github.com/google/uuid"

	infra "github.com/splitmoney/splitmoney/infra/repository"
)

// ExportJob persists a report export request. Filters is the JSON-encoded
// filter map as received from the API.
type ExportJob struct {
	infra.Base
	ReportType  string    `gorm:"size:30;not null;index"`
	Format      string    `gorm:"size:10;not null;default:'csv'"`
	Status      string    `gorm:"size:20;not null;default:'pending';index"`
	Filters     string    `gorm:"type:text"`
	FilePath    string    `gorm:"size:255"`
	Message     string    `gorm:"size:255"`
	RequestedBy uuid.UUID `gorm:"type:uuid;index;not null"`
}

func (ExportJob) TableName() string {
	return "report_export_jobs"
}
