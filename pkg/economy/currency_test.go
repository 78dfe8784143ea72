package economy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency_Round(t *testing.T) {
	c := Currency{FractionalDigits: 2}
	assert.Equal(t, "1.24", c.Round(decimal.RequireFromString("1.235")).String())

	none := Currency{FractionalDigits: NoRounding}
	assert.Equal(t, "1.23456", none.Round(decimal.RequireFromString("1.23456")).String())
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		amount   string
		want     string
	}{
		{
			name:     "plural name with grouping",
			currency: Currency{Singular: "coin", Plural: "coins", FractionalDigits: 0},
			amount:   "1234567",
			want:     "1,234,567 coins",
		},
		{
			name:     "singular name",
			currency: Currency{Singular: "coin", Plural: "coins", FractionalDigits: 0},
			amount:   "1",
			want:     "1 coin",
		},
		{
			name:     "symbol replaces name",
			currency: Currency{Singular: "dollar", Plural: "dollars", Symbol: "$", FractionalDigits: 2},
			amount:   "1234.5",
			want:     "$1,234.50",
		},
		{
			name:     "negative amount",
			currency: Currency{Symbol: "$", FractionalDigits: 2},
			amount:   "-20",
			want:     "-$20.00",
		},
		{
			name:     "no rounding keeps given precision",
			currency: Currency{FractionalDigits: NoRounding},
			amount:   "12.125",
			want:     "12.125",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.currency.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}
