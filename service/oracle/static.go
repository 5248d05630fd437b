package oracle

import (
	"context"
	"fmt"
	"lending/core"
	"lending/pkg/number"

	"github.com/shopspring/decimal"
)

type staticFeed struct {
	prices map[string]number.Amount
	scale  number.Amount
}

// NewStatic fixed prices, already scaled
func NewStatic(prices map[string]number.Amount, scale number.Amount) core.IPriceFeed {
	return &staticFeed{
		prices: prices,
		scale:  scale,
	}
}

// FromConfig static feed from decimal prices, scaled by 10^decimals
func FromConfig(cfg core.Price) (core.IPriceFeed, error) {
	prices := make(map[string]number.Amount, len(cfg.Static))
	for assetID, v := range cfg.Static {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("price of %s: %w", assetID, err)
		}

		price, err := number.AmountFromDecimal(d, cfg.Decimals)
		if err != nil {
			return nil, fmt.Errorf("price of %s: %w", assetID, err)
		}

		prices[assetID] = price
	}

	return NewStatic(prices, Scale(cfg.Decimals)), nil
}

func (f *staticFeed) PriceOf(ctx context.Context, assetID string) (number.Amount, error) {
	price, ok := f.prices[assetID]
	if !ok {
		return number.Zero, fmt.Errorf("%w: no price for %s", core.ErrUnsupportedAsset, assetID)
	}

	if price.IsZero() {
		return number.Zero, core.ErrInvalidPrice
	}

	return price, nil
}

func (f *staticFeed) Scale() number.Amount {
	return f.scale
}

// Scale 10^decimals
func Scale(decimals int32) number.Amount {
	v, _ := number.AmountFromDecimal(decimal.New(1, decimals), 0)
	return v
}
