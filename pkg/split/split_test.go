package split_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitmoney/splitmoney/pkg/split"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPerPersonAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		total string
		count int
		want  string
	}{
		{"even split", "100.00", 4, "25"},
		{"thirds round down", "1000.00", 3, "333.33"},
		{"repeating decimal rounds up", "100.00", 3, "33.33"},
		{"half rounds away from zero", "0.25", 2, "0.13"},
		{"single participant", "99.99", 1, "99.99"},
		{"zero participants", "500.00", 0, "0"},
		{"negative participants", "500.00", -2, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := split.PerPersonAmount(dec(tt.total), tt.count)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestPerPersonAmount_WithinOneCentOfTotal(t *testing.T) {
	t.Parallel()
	totals := []string{"1000.00", "0.01", "99.99", "123.45", "7.77"}
	oneCent := dec("0.01")
	for _, total := range totals {
		for count := 1; count <= 12; count++ {
			per := split.PerPersonAmount(dec(total), count)
			diff := per.Mul(decimal.NewFromInt(int64(count))).Sub(dec(total)).Abs()
			// rounding error grows at most half a cent per participant
			limit := oneCent.Mul(decimal.NewFromInt(int64(count)))
			assert.True(t, diff.LessThanOrEqual(limit),
				"total=%s count=%d per=%s diff=%s", total, count, per, diff)
		}
	}
}

func TestRoundingRemainder_Scenario(t *testing.T) {
	t.Parallel()
	// 1000.00 across 3 people -> 333.33 each leaves a 1-cent remainder
	// that must be surfaced, not dropped.
	rem := split.RoundingRemainder(dec("1000.00"), 3)
	assert.True(t, rem.Equal(dec("0.01")), "remainder = %s", rem)

	rem = split.RoundingRemainder(dec("100.00"), 4)
	assert.True(t, rem.IsZero())
}

func TestBuildShareLink(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	link := split.BuildShareLink(id, dec("333.33"))

	require.True(t, strings.HasPrefix(link, split.JoinPath+"?"))
	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, id.String(), q.Get("event_id"))
	assert.Equal(t, "333.33", q.Get("amount"))
}

func TestParseShareLink_RoundTrip(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	for _, amount := range []string{"0.01", "333.33", "12000.50"} {
		link := split.BuildShareLink(id, dec(amount))
		u, err := url.Parse(link)
		require.NoError(t, err)

		gotID, gotAmt, err := split.ParseShareLink(
			u.Query().Get("event_id"), u.Query().Get("amount"))
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.True(t, gotAmt.Equal(dec(amount)))
	}
}

func TestParseShareLink_Invalid(t *testing.T) {
	t.Parallel()
	id := uuid.New().String()
	tests := []struct {
		name    string
		eventID string
		amount  string
	}{
		{"garbage event id", "not-a-uuid", "10.00"},
		{"empty amount", id, ""},
		{"non numeric amount", id, "ten"},
		{"zero amount", id, "0.00"},
		{"negative amount", id, "-5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := split.ParseShareLink(tt.eventID, tt.amount)
			assert.Error(t, err)
		})
	}
}
