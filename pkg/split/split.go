// Package split derives per-person shares from an event total and encodes
// them into shareable join links.
package split

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JoinPath is the unauthenticated event preview route the share link targets.
const JoinPath = "/join/event"

// PerPersonAmount divides the event total across participants and rounds to
// the nearest cent, half away from zero. A non-positive participant count
// yields zero. The rounding remainder stays with the collected total: callers
// must reconcile the ±1 cent drift explicitly, never drop it.
func PerPersonAmount(total decimal.Decimal, personsCount int) decimal.Decimal {
	if personsCount <= 0 {
		return decimal.Zero.Round(2)
	}
	return total.Div(decimal.NewFromInt(int64(personsCount))).Round(2)
}

// RoundingRemainder reports total - perPerson*count, the amount by which the
// rounded shares over- or under-shoot the event total.
func RoundingRemainder(total decimal.Decimal, personsCount int) decimal.Decimal {
	if personsCount <= 0 {
		return decimal.Zero.Round(2)
	}
	per := PerPersonAmount(total, personsCount)
	return total.Sub(per.Mul(decimal.NewFromInt(int64(personsCount))))
}

// BuildShareLink renders the relative join URL carrying the event id and the
// pre-computed per-person amount.
func BuildShareLink(eventID uuid.UUID, perPerson decimal.Decimal) string {
	params := url.Values{}
	params.Set("event_id", eventID.String())
	params.Set("amount", perPerson.StringFixed(2))
	return JoinPath + "?" + params.Encode()
}

// ParseShareLink validates the query parameters of a share link. The amount
// must parse as a decimal and be strictly positive.
func ParseShareLink(eventID, amount string) (uuid.UUID, decimal.Decimal, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return uuid.Nil, decimal.Zero, fmt.Errorf("invalid event id %q: %w", eventID, err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return uuid.Nil, decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if !amt.IsPositive() {
		return uuid.Nil, decimal.Zero, fmt.Errorf("invalid amount %s: must be greater than 0", amt)
	}
	return id, amt, nil
}
