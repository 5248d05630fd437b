package number

import (
	"github.com/shopspring/decimal"
)

func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Percent render basis points as a percentage, 15000 => 150
func Percent(bps Amount) decimal.Decimal {
	return bps.Decimal(2)
}
