package ledger

import (
	"context"
	"lending/core"
	"lending/internal/compound"
	"lending/pkg/id"
	"lending/pkg/number"
	"time"
)

func (s *service) Liquidate(ctx context.Context, liquidator, owner string, repayAmount number.Amount) (result *core.LiquidationResult, err error) {
	defer observe(ctx, "liquidate", time.Now(), &err)

	if err := validOwner(owner); err != nil {
		return nil, err
	}

	if err := validOwner(liquidator); err != nil {
		return nil, err
	}

	if liquidator == owner {
		return nil, core.ErrSelfLiquidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	collateral, borrow, err := s.checkpointPosition(ctx, owner, now)
	if err != nil {
		return nil, err
	}

	price, err := s.price(ctx)
	if err != nil {
		return nil, err
	}

	scale := s.prices.Scale()
	ratio, err := compound.CollateralRatio(collateral, borrow, price, scale)
	if err != nil {
		return nil, err
	}

	if !borrow.HasDebt() || !ratio.LessThan(number.NewAmount(s.params.MinRatio)) {
		return nil, core.ErrNotUndercollateralized
	}

	if repayAmount.IsZero() {
		debt, err := borrow.Debt()
		if err != nil {
			return nil, overflow(err)
		}

		if repayAmount, err = compound.CloseAmount(debt, s.params.CloseFactor); err != nil {
			return nil, err
		}

		if repayAmount.IsZero() {
			return nil, core.ErrZeroAmount
		}
	}

	borrow.InterestOwed, borrow.AmountBorrowed, err = compound.AllocateRepay(borrow.InterestOwed, borrow.AmountBorrowed, repayAmount)
	if err != nil {
		return nil, err
	}

	seized, err := compound.SeizeAmount(repayAmount, price, scale, s.params.LiquidationIncentive)
	if err != nil {
		return nil, err
	}

	if seized.GreaterThan(collateral.Principal) {
		return nil, core.ErrInsufficientCollateralToSeize
	}

	if collateral.Principal, err = collateral.Principal.Sub(seized); err != nil {
		return nil, overflow(err)
	}

	result = &core.LiquidationResult{
		Owner:      owner,
		Liquidator: liquidator,
		Repaid:     repayAmount,
		Seized:     seized,
		Remaining:  borrow.AmountBorrowed,
		Ratio:      ratio,
	}

	traceID := traceIDFrom(ctx)
	repay := newEvent(id.UUIDByName(traceID, "repay"), core.EventKindRepay, owner, s.assets.Base.ID, repayAmount, now)
	repay.SetData(core.EventData{Remaining: &result.Remaining})

	liquidate := newEvent(traceID, core.EventKindLiquidate, owner, s.assets.Base.ID, repayAmount, now)
	liquidate.SetData(core.EventData{
		Ratio:      &result.Ratio,
		Remaining:  &result.Remaining,
		Liquidator: liquidator,
		Seized:     &result.Seized,
	})

	cs := (&core.Changeset{}).
		AddDeposit(collateral).
		AddBorrow(borrow).
		AddEvent(repay).
		AddEvent(liquidate)

	if err := s.commit(ctx, cs,
		transferIn(traceID, s.assets.Base.ID, liquidator, repayAmount),
		transferOut(id.UUIDByName(traceID, "seize"), s.assets.Collateral.ID, liquidator, seized),
	); err != nil {
		return nil, err
	}

	return result, nil
}
