package views

import (
	"lending/core"
	"lending/internal/compound"
	"lending/pkg/number"

	"github.com/shopspring/decimal"
)

// Borrow borrow result view
type Borrow struct {
	Amount       number.Amount   `json:"amount"`
	Ratio        number.Amount   `json:"ratio"`
	RatioPercent decimal.Decimal `json:"ratio_percent"`
}

// BorrowResult view of a borrow result
func BorrowResult(r *core.BorrowResult) Borrow {
	return Borrow{
		Amount:       r.Amount,
		Ratio:        r.Ratio,
		RatioPercent: RatioPercent(r.Ratio),
	}
}

// Ratio collateral ratio view
type Ratio struct {
	Owner        string          `json:"owner"`
	AssetID      string          `json:"asset_id"`
	Ratio        number.Amount   `json:"ratio"`
	RatioPercent decimal.Decimal `json:"ratio_percent"`
	Liquidatable bool            `json:"liquidatable"`
}

// Position borrower position view
type Position struct {
	core.RatioSnapshot
	RatioPercent decimal.Decimal `json:"ratio_percent"`
}

// Positions views of cached snapshots
func Positions(snapshots []*core.RatioSnapshot) []Position {
	views := make([]Position, 0, len(snapshots))
	for _, s := range snapshots {
		views = append(views, Position{
			RatioSnapshot: *s,
			RatioPercent:  RatioPercent(s.Ratio),
		})
	}

	return views
}

// RatioPercent ratio in percent, -1 when there is no debt
func RatioPercent(ratio number.Amount) decimal.Decimal {
	if ratio.Equal(compound.MaxRatio) {
		return decimal.NewFromInt(-1)
	}

	return number.Percent(ratio)
}
