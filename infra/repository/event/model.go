package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	infra "github.com/splitmoney/splitmoney/infra/repository"
)

// Event represents a cost-sharing occasion.
type Event struct {
	infra.Base
	Title         string `gorm:"not null;size:200"`
	Category      string `gorm:"not null;size:20"`
	Description   string
	EventDate     time.Time       `gorm:"not null;index:idx_events_status_date,priority:2"`
	StartDateTime time.Time       `gorm:"not null"`
	EndDateTime   time.Time       `gorm:"not null"`
	DuePayDate    time.Time       `gorm:"not null"`
	EventAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Latitude      *float64
	Longitude     *float64
	PersonsCount  int       `gorm:"not null;default:1"`
	Status        string    `gorm:"not null;size:20;default:'draft';index:idx_events_status_date,priority:1"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (Event) TableName() string {
	return "events"
}
