package core

import (
	"context"
	"lending/pkg/number"
)

// BasisPoints 10000 = 100%
const BasisPoints = 10000

// Rate interest per tick, Numerator/Denominator of the principal
type Rate struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// Params risk parameters of a ledger
type Params struct {
	// MinRatio minimum collateral ratio in basis points
	MinRatio    uint64 `json:"min_ratio"`
	DepositRate Rate   `json:"deposit_rate"`
	BorrowRate  Rate   `json:"borrow_rate"`
	// LiquidationIncentive extra collateral paid to liquidators, basis points
	LiquidationIncentive uint64 `json:"liquidation_incentive"`
	// CloseFactor share of the debt repaid by a liquidation when no amount is given, basis points
	CloseFactor uint64 `json:"close_factor"`
}

// DefaultParams 150% minimum ratio, 3/10000 deposit and 5/10000 borrow rate per tick
func DefaultParams() Params {
	return Params{
		MinRatio:             15000,
		DepositRate:          Rate{Numerator: 3, Denominator: 10000},
		BorrowRate:           Rate{Numerator: 5, Denominator: 10000},
		LiquidationIncentive: 0,
		CloseFactor:          BasisPoints,
	}
}

// BorrowResult result of a borrow
type BorrowResult struct {
	Amount number.Amount `json:"amount"`
	Ratio  number.Amount `json:"ratio"`
}

// LiquidationResult result of a liquidation
type LiquidationResult struct {
	Owner      string        `json:"owner"`
	Liquidator string        `json:"liquidator"`
	Repaid     number.Amount `json:"repaid"`
	Seized     number.Amount `json:"seized"`
	Remaining  number.Amount `json:"remaining"`
	Ratio      number.Amount `json:"ratio"`
}

// ILedgerService lending ledger
type ILedgerService interface {
	Deposit(ctx context.Context, assetID, owner string, amount number.Amount) (*Event, error)
	// Withdraw amount 0 withdraws the full principal, returns the payout
	Withdraw(ctx context.Context, assetID, owner string, amount number.Amount) (number.Amount, error)
	// Borrow amount 0 borrows the maximum the collateral allows
	Borrow(ctx context.Context, assetID, owner string, amount number.Amount) (*BorrowResult, error)
	// Repay returns the remaining principal
	Repay(ctx context.Context, owner string, amount number.Amount) (number.Amount, error)
	// Liquidate repayAmount 0 repays the close factor share of the debt
	Liquidate(ctx context.Context, liquidator, owner string, repayAmount number.Amount) (*LiquidationResult, error)
	BalanceOf(ctx context.Context, assetID, owner string) (number.Amount, error)
	CollateralRatioOf(ctx context.Context, assetID, owner string) (number.Amount, error)
	IsLiquidatable(ctx context.Context, owner string) (bool, error)
	// Position current ratio, debt and collateral of owner
	Position(ctx context.Context, owner string) (*RatioSnapshot, error)
	Borrowers(ctx context.Context, fromID uint64, limit int) ([]*Borrow, error)
	Params() Params
	Assets() Assets
}
