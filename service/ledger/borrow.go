package ledger

import (
	"context"
	"lending/core"
	"lending/internal/compound"
	"lending/pkg/number"
	"time"
)

func (s *service) Borrow(ctx context.Context, assetID, owner string, amount number.Amount) (result *core.BorrowResult, err error) {
	defer observe(ctx, "borrow", time.Now(), &err)

	if err := validOwner(owner); err != nil {
		return nil, err
	}

	if s.assets.Kind(assetID) != core.AssetKindBase {
		return nil, core.ErrUnsupportedAsset
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

	if collateral.Principal.IsZero() {
		return nil, core.ErrNoCollateral
	}

	price, err := s.price(ctx)
	if err != nil {
		return nil, err
	}

	scale := s.prices.Scale()
	collateralValue, err := collateral.Total()
	if err != nil {
		return nil, overflow(err)
	}

	debt, err := borrow.Debt()
	if err != nil {
		return nil, overflow(err)
	}

	var ratio number.Amount
	if amount.IsZero() {
		maxDebt, err := compound.MaxTotalDebt(collateralValue, price, scale, s.params.MinRatio)
		if err != nil {
			return nil, err
		}

		if maxDebt.LessThan(debt) {
			return nil, core.ErrUnderwater
		}

		if amount, err = maxDebt.Sub(debt); err != nil {
			return nil, overflow(err)
		}

		// exactly at the limit, nothing left to borrow
		if amount.IsZero() {
			return nil, core.ErrInsufficientCollateral
		}

		ratio = number.NewAmount(s.params.MinRatio)
	} else {
		newDebt, err := debt.Add(amount)
		if err != nil {
			return nil, overflow(err)
		}

		if ratio, err = compound.Ratio(collateralValue, newDebt, price, scale); err != nil {
			return nil, err
		}

		if ratio.LessThan(number.NewAmount(s.params.MinRatio)) {
			return nil, core.ErrInsufficientCollateral
		}
	}

	if borrow.AmountBorrowed, err = borrow.AmountBorrowed.Add(amount); err != nil {
		return nil, overflow(err)
	}

	traceID := traceIDFrom(ctx)
	event := newEvent(traceID, core.EventKindBorrow, owner, assetID, amount, now)
	event.SetData(core.EventData{Ratio: &ratio})

	cs := (&core.Changeset{}).AddDeposit(collateral).AddBorrow(borrow).AddEvent(event)
	if err := s.commit(ctx, cs, transferOut(traceID, assetID, owner, amount)); err != nil {
		return nil, err
	}

	return &core.BorrowResult{
		Amount: amount,
		Ratio:  ratio,
	}, nil
}

// checkpointPosition loads the owner's collateral deposit and borrow, both checkpointed at now
func (s *service) checkpointPosition(ctx context.Context, owner string, now uint64) (*core.Deposit, *core.Borrow, error) {
	collateral, err := s.accounts.FindDeposit(ctx, s.assets.Collateral.ID, owner)
	if err != nil {
		return nil, nil, err
	}

	borrow, err := s.accounts.FindBorrow(ctx, owner)
	if err != nil {
		return nil, nil, err
	}

	if err := compound.CheckpointDeposit(collateral, s.params.DepositRate, now); err != nil {
		return nil, nil, err
	}

	if err := compound.CheckpointBorrow(borrow, s.params.BorrowRate, now); err != nil {
		return nil, nil, err
	}

	return collateral, borrow, nil
}
