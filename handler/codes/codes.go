package codes

import (
	"errors"
	"lending/core"
	"strconv"

	"github.com/fox-one/pkg/store/db"
	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}

// Of custom code of err, falls back to the twirp code
func Of(err twirp.Error) int {
	if v := err.Meta(CustomCodeKey); v != "" {
		if code, e := strconv.Atoi(v); e == nil {
			return code
		}
	}

	return Get(err.Code())
}

// FromError map ledger errors to twirp errors carrying the numeric ledger code
func FromError(err error) twirp.Error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	if errors.Is(err, db.ErrOptimisticLock) {
		return twirp.NewError(twirp.Aborted, err.Error())
	}

	var code core.ErrorCode
	if !errors.As(err, &code) {
		return twirp.InternalErrorWith(err)
	}

	twerr := twirp.NewError(twirpCode(code), err.Error())
	return twerr.WithMeta(CustomCodeKey, code.String())
}

func twirpCode(code core.ErrorCode) twirp.ErrorCode {
	switch code {
	case core.ErrUnsupportedAsset,
		core.ErrZeroAmount,
		core.ErrInvalidOwner,
		core.ErrSelfLiquidation,
		core.ErrArithmeticOverflow:
		return twirp.InvalidArgument
	case core.ErrNoBalance,
		core.ErrInsufficientBalance,
		core.ErrNothingToRepay,
		core.ErrOverRepayment,
		core.ErrNoCollateral,
		core.ErrInsufficientCollateral,
		core.ErrUnderwater,
		core.ErrNotUndercollateralized,
		core.ErrInsufficientCollateralToSeize:
		return twirp.FailedPrecondition
	case core.ErrDuplicateTrace:
		return twirp.AlreadyExists
	case core.ErrCustodyUnavailable, core.ErrInvalidPrice:
		return twirp.Unavailable
	default:
		return twirp.Internal
	}
}
