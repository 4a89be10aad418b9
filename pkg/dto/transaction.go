package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/splitmoney/splitmoney/pkg/domain"
)

// TransactionCreate records one monetary movement against an event.
type TransactionCreate struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Kind          domain.TransactionKind
	Status        domain.TransactionStatus
	Description   string
	PaymentMethod string
}

// TransactionUpdate is admin-only; the amount is immutable after creation.
type TransactionUpdate struct {
	Status        *domain.TransactionStatus
	Description   *string
	PaymentMethod *string
}

// TransactionRead is the read view of a ledger entry.
type TransactionRead struct {
	ID            uuid.UUID                `json:"id"`
	EventID       uuid.UUID                `json:"event_id"`
	UserID        uuid.UUID                `json:"user_id"`
	Amount        decimal.Decimal          `json:"amount"`
	Kind          domain.TransactionKind   `json:"transaction_type"`
	Status        domain.TransactionStatus `json:"status"`
	Description   string                   `json:"description,omitempty"`
	PaymentMethod string                   `json:"payment_method,omitempty"`
	CreatedAt     time.Time                `json:"transaction_date"`
}

// TransactionFilter narrows ledger listings.
type TransactionFilter struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Status  domain.TransactionStatus
	Kind    domain.TransactionKind
}

// EventCollectionSummary aggregates an event's ledger by status.
type EventCollectionSummary struct {
	EventID            uuid.UUID       `json:"event_id"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	CompletedAmount    decimal.Decimal `json:"completed_amount"`
	PendingAmount      decimal.Decimal `json:"pending_amount"`
	FailedAmount       decimal.Decimal `json:"failed_amount"`
	TotalTransactions  int64           `json:"total_transactions"`
	CompletedCount     int64           `json:"completed_count"`
	PendingCount       int64           `json:"pending_count"`
	FailedCount        int64           `json:"failed_count"`
	UniqueContributors int64           `json:"unique_contributors"`
}
