package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequest carries a new event; status always starts at draft.
type CreateRequest struct {
	Title         string          `json:"title" validate:"required,min=2,max=100"`
	Category      string          `json:"category" validate:"required"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	EventDate     time.Time       `json:"event_date" validate:"required"`
	StartDateTime time.Time       `json:"start_date_time" validate:"required"`
	EndDateTime   time.Time       `json:"end_date_time" validate:"required"`
	DuePayDate    time.Time       `json:"due_pay_date" validate:"required"`
	EventAmount   decimal.Decimal `json:"event_amount" validate:"required"`
	Latitude      *float64        `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64        `json:"longitude" validate:"omitempty,longitude"`
	PersonsCount  int             `json:"persons_count" validate:"required,min=1"`
}

// UpdateRequest changes event fields; omitted fields stay as they are.
type UpdateRequest struct {
	Title         *string          `json:"title" validate:"omitempty,min=2,max=100"`
	Category      *string          `json:"category"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	EventDate     *time.Time       `json:"event_date"`
	StartDateTime *time.Time       `json:"start_date_time"`
	EndDateTime   *time.Time       `json:"end_date_time"`
	DuePayDate    *time.Time       `json:"due_pay_date"`
	EventAmount   *decimal.Decimal `json:"event_amount"`
	Latitude      *float64         `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64         `json:"longitude" validate:"omitempty,longitude"`
	PersonsCount  *int             `json:"persons_count" validate:"omitempty,min=1"`
	Status        *string          `json:"status"`
}

// StatusRequest is the status-only transition payload.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}
