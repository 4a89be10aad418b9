package transaction

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	infra "github.com/splitmoney/splitmoney/infra/repository"
)

// Transaction represents one monetary movement tied to an event and an
// account. CreatedAt doubles as the transaction time and is immutable.
type Transaction struct {
	infra.Base
	EventID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_txn_event_status,priority:1;index:idx_txn_event_user,priority:1"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_txn_event_user,priority:2"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Kind          string          `gorm:"column:transaction_type;not null;size:20;default:'contribution'"`
	Status        string          `gorm:"not null;size:20;default:'pending';index:idx_txn_event_status,priority:2"`
	Description   string
	PaymentMethod string `gorm:"size:50"`
}

func (Transaction) TableName() string {
	return "event_collection_transactions"
}
