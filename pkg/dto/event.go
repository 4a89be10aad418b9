package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitmoney/splitmoney/pkg/domain"
)

// EventCreate carries a new event. Status always starts at draft.
type EventCreate struct {
	ID            uuid.UUID
	Title         string
	Category      domain.EventCategory
	Description   string
	EventDate     time.Time
	StartDateTime time.Time
	EndDateTime   time.Time
	DuePayDate    time.Time
	EventAmount   decimal.Decimal
	Latitude      *float64
	Longitude     *float64
	PersonsCount  int
	CreatedBy     uuid.UUID
}

// EventUpdate represents a full or partial event update; nil fields are kept.
type EventUpdate struct {
	Title         *string
	Category      *domain.EventCategory
	Description   *string
	EventDate     *time.Time
	StartDateTime *time.Time
	EndDateTime   *time.Time
	DuePayDate    *time.Time
	EventAmount   *decimal.Decimal
	Latitude      *float64
	Longitude     *float64
	PersonsCount  *int
	Status        *domain.EventStatus
}

// EventRead is the read view of an event.
type EventRead struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	Category      domain.EventCategory `json:"category"`
	Description   string               `json:"description,omitempty"`
	EventDate     time.Time            `json:"event_date"`
	StartDateTime time.Time            `json:"start_date_time"`
	EndDateTime   time.Time            `json:"end_date_time"`
	DuePayDate    time.Time            `json:"due_pay_date"`
	EventAmount   decimal.Decimal      `json:"event_amount"`
	Latitude      *float64             `json:"latitude,omitempty"`
	Longitude     *float64             `json:"longitude,omitempty"`
	PersonsCount  int                  `json:"persons_count"`
	Status        domain.EventStatus   `json:"status"`
	CreatedBy     uuid.UUID            `json:"created_by"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// EventFilter narrows event listings.
type EventFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Status    domain.EventStatus
	Category  domain.EventCategory
	Search    string
	CreatedBy uuid.UUID // uuid.Nil means all creators (admin view)
}

// EventMember is one contributor in an event summary.
type EventMember struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// EventSummary aggregates an event for the summary endpoint.
type EventSummary struct {
	Event           *EventRead      `json:"event"`
	Members         []EventMember   `json:"members"`
	CollectedAmount decimal.Decimal `json:"collected_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DueDate         time.Time       `json:"due_date"`
	CreatedBy       *EventMember    `json:"created_by,omitempty"`
}

// JoinPreview is what an invitee sees before paying their share.
type JoinPreview struct {
	Event  *EventRead      `json:"event"`
	Amount decimal.Decimal `json:"amount"`
}

// ShareLink is the response of the share-link endpoint.
type ShareLink struct {
	EventID           uuid.UUID       `json:"event_id"`
	PerPersonAmount   decimal.Decimal `json:"per_person_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PersonsCount      int             `json:"persons_count"`
	RoundingRemainder decimal.Decimal `json:"rounding_remainder"`
	ShareURL          string          `json:"share_url"`
}
