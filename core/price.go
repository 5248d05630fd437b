package core

import (
	"context"
	"lending/pkg/number"

	"github.com/shopspring/decimal"
)

// PriceTicker price ticker
type PriceTicker struct {
	Provider string          `json:"provider,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Price    decimal.Decimal `json:"price,omitempty"`
}

// IPriceFeed collateral price in base-asset units, fixed-point scaled
type IPriceFeed interface {
	PriceOf(ctx context.Context, assetID string) (number.Amount, error)
	// Scale fixed-point factor of every price, e.g. 10^18
	Scale() number.Amount
}
