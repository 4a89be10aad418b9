package payment

import "github.com/shopspring/decimal"

// CreateRequest records a contribution against an event. The paying account
// comes from the token.
type CreateRequest struct {
	EventID       string          `json:"event_id" validate:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Kind          string          `json:"transaction_type"`
	Description   string          `json:"description" validate:"omitempty,max=255"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,max=50"`
}

// UpdateRequest is admin-only; the amount cannot change.
type UpdateRequest struct {
	Status        *string `json:"status"`
	Description   *string `json:"description" validate:"omitempty,max=255"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
}
