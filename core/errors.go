package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// ErrUnsupportedAsset asset is neither base nor collateral
	ErrUnsupportedAsset ErrorCode = 100100
	// ErrZeroAmount amount must be positive
	ErrZeroAmount ErrorCode = 100101
	// ErrNoBalance no deposit principal
	ErrNoBalance ErrorCode = 100102
	// ErrInsufficientBalance withdraw amount exceeds principal
	ErrInsufficientBalance ErrorCode = 100103
	// ErrNothingToRepay no outstanding borrow
	ErrNothingToRepay ErrorCode = 100104
	// ErrOverRepayment repay exceeds interest owed plus principal
	ErrOverRepayment ErrorCode = 100105
	// ErrNoCollateral no collateral deposit
	ErrNoCollateral ErrorCode = 100106
	// ErrInsufficientCollateral resulting ratio below the minimum
	ErrInsufficientCollateral ErrorCode = 100107
	// ErrUnderwater existing debt already exceeds the borrow limit
	ErrUnderwater ErrorCode = 100108
	// ErrCustodyUnavailable custody could not move the funds
	ErrCustodyUnavailable ErrorCode = 100109
	// ErrClockRegressed clock went backwards
	ErrClockRegressed ErrorCode = 100110
	// ErrNotUndercollateralized position is not liquidatable
	ErrNotUndercollateralized ErrorCode = 100111
	// ErrInsufficientCollateralToSeize seizure exceeds collateral principal
	ErrInsufficientCollateralToSeize ErrorCode = 100112
	// ErrArithmeticOverflow intermediate value exceeds 256 bits
	ErrArithmeticOverflow ErrorCode = 100113
	// ErrInvalidPrice price feed returned zero
	ErrInvalidPrice ErrorCode = 100114
	// ErrSelfLiquidation liquidator and owner are the same account
	ErrSelfLiquidation ErrorCode = 100115
	// ErrInvalidOwner empty owner id
	ErrInvalidOwner ErrorCode = 100116
	// ErrDuplicateTrace an event with the trace id is already recorded
	ErrDuplicateTrace ErrorCode = 100117
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:                       "unknown error",
	ErrUnsupportedAsset:              "unsupported asset",
	ErrZeroAmount:                    "zero amount",
	ErrNoBalance:                     "no balance",
	ErrInsufficientBalance:           "insufficient balance",
	ErrNothingToRepay:                "nothing to repay",
	ErrOverRepayment:                 "over repayment",
	ErrNoCollateral:                  "no collateral",
	ErrInsufficientCollateral:        "insufficient collateral",
	ErrUnderwater:                    "underwater",
	ErrCustodyUnavailable:            "custody unavailable",
	ErrClockRegressed:                "clock regressed",
	ErrNotUndercollateralized:        "not undercollateralized",
	ErrInsufficientCollateralToSeize: "insufficient collateral to seize",
	ErrArithmeticOverflow:            "arithmetic overflow",
	ErrInvalidPrice:                  "invalid price",
	ErrSelfLiquidation:               "self liquidation",
	ErrInvalidOwner:                  "invalid owner",
	ErrDuplicateTrace:                "duplicate trace id",
}

// Code numeric code
func (e ErrorCode) Code() int {
	return int(e)
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return e.String()
}
