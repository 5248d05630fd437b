package ledger

import (
	"context"
	"lending/core"
	"lending/internal/compound"
	"lending/pkg/number"
	"time"
)

func (s *service) Deposit(ctx context.Context, assetID, owner string, amount number.Amount) (event *core.Event, err error) {
	defer observe(ctx, "deposit", time.Now(), &err)

	if err := validOwner(owner); err != nil {
		return nil, err
	}

	if !s.assets.Supported(assetID) {
		return nil, core.ErrUnsupportedAsset
	}

	if amount.IsZero() {
		return nil, core.ErrZeroAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	deposit, err := s.accounts.FindDeposit(ctx, assetID, owner)
	if err != nil {
		return nil, err
	}

	if err := compound.CheckpointDeposit(deposit, s.params.DepositRate, now); err != nil {
		return nil, err
	}

	if deposit.Principal, err = deposit.Principal.Add(amount); err != nil {
		return nil, overflow(err)
	}

	traceID := traceIDFrom(ctx)
	event = newEvent(traceID, core.EventKindDeposit, owner, assetID, amount, now)
	cs := (&core.Changeset{}).AddDeposit(deposit).AddEvent(event)
	if err := s.commit(ctx, cs, transferIn(traceID, assetID, owner, amount)); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *service) Withdraw(ctx context.Context, assetID, owner string, amount number.Amount) (payout number.Amount, err error) {
	defer observe(ctx, "withdraw", time.Now(), &err)

	if err := validOwner(owner); err != nil {
		return number.Zero, err
	}

	if !s.assets.Supported(assetID) {
		return number.Zero, core.ErrUnsupportedAsset
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now, err := s.clock.Now(ctx)
	if err != nil {
		return number.Zero, err
	}

	deposit, err := s.accounts.FindDeposit(ctx, assetID, owner)
	if err != nil {
		return number.Zero, err
	}

	if deposit.Principal.IsZero() {
		return number.Zero, core.ErrNoBalance
	}

	if amount.IsZero() {
		amount = deposit.Principal
	}

	if amount.GreaterThan(deposit.Principal) {
		return number.Zero, core.ErrInsufficientBalance
	}

	if err := compound.CheckpointDeposit(deposit, s.params.DepositRate, now); err != nil {
		return number.Zero, err
	}

	if deposit.Principal, err = deposit.Principal.Sub(amount); err != nil {
		return number.Zero, overflow(err)
	}

	if payout, err = amount.Add(deposit.AccruedInterest); err != nil {
		return number.Zero, overflow(err)
	}

	deposit.AccruedInterest = number.Zero

	traceID := traceIDFrom(ctx)
	event := newEvent(traceID, core.EventKindWithdraw, owner, assetID, payout, now)
	cs := (&core.Changeset{}).AddDeposit(deposit).AddEvent(event)
	if err := s.commit(ctx, cs, transferOut(traceID, assetID, owner, payout)); err != nil {
		return number.Zero, err
	}

	return payout, nil
}
