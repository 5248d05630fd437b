package ledger

import (
	"context"
	"lending/core"
	"lending/internal/compound"
	"lending/pkg/number"
	"time"
)

func (s *service) Repay(ctx context.Context, owner string, amount number.Amount) (remaining number.Amount, err error) {
	defer observe(ctx, "repay", time.Now(), &err)

	if err := validOwner(owner); err != nil {
		return number.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now, err := s.clock.Now(ctx)
	if err != nil {
		return number.Zero, err
	}

	borrow, err := s.accounts.FindBorrow(ctx, owner)
	if err != nil {
		return number.Zero, err
	}

	if borrow.AmountBorrowed.IsZero() {
		return number.Zero, core.ErrNothingToRepay
	}

	if amount.IsZero() {
		return number.Zero, core.ErrZeroAmount
	}

	if err := compound.CheckpointBorrow(borrow, s.params.BorrowRate, now); err != nil {
		return number.Zero, err
	}

	borrow.InterestOwed, borrow.AmountBorrowed, err = compound.AllocateRepay(borrow.InterestOwed, borrow.AmountBorrowed, amount)
	if err != nil {
		return number.Zero, err
	}

	traceID := traceIDFrom(ctx)
	event := newEvent(traceID, core.EventKindRepay, owner, s.assets.Base.ID, amount, now)
	event.SetData(core.EventData{Remaining: &borrow.AmountBorrowed})

	cs := (&core.Changeset{}).AddBorrow(borrow).AddEvent(event)
	if err := s.commit(ctx, cs, transferIn(traceID, s.assets.Base.ID, owner, amount)); err != nil {
		return number.Zero, err
	}

	return borrow.AmountBorrowed, nil
}
