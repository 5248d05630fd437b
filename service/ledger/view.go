package ledger

import (
	"context"
	"lending/core"
	"lending/internal/compound"
	"lending/pkg/number"
)

func (s *service) BalanceOf(ctx context.Context, assetID, owner string) (number.Amount, error) {
	if !s.assets.Supported(assetID) {
		return number.Zero, core.ErrUnsupportedAsset
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now, err := s.clock.Now(ctx)
	if err != nil {
		return number.Zero, err
	}

	deposit, err := s.accounts.FindDeposit(ctx, assetID, owner)
	if err != nil {
		return number.Zero, err
	}

	return compound.DepositBalance(deposit, s.params.DepositRate, now)
}

// CollateralRatioOf 0 for the base asset and for owners without collateral
func (s *service) CollateralRatioOf(ctx context.Context, assetID, owner string) (number.Amount, error) {
	switch s.assets.Kind(assetID) {
	case core.AssetKindBase:
		return number.Zero, nil
	case core.AssetKindUnsupported:
		return number.Zero, core.ErrUnsupportedAsset
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, err := s.position(ctx, owner)
	if err != nil {
		return number.Zero, err
	}

	return pos.Ratio, nil
}

func (s *service) IsLiquidatable(ctx context.Context, owner string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, err := s.position(ctx, owner)
	if err != nil {
		return false, err
	}

	return pos.Liquidatable, nil
}

// Position ratio, debt and collateral of owner read under one lock
func (s *service) Position(ctx context.Context, owner string) (*core.RatioSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.position(ctx, owner)
}

func isLiquidatable(ratio, debt number.Amount, minRatio uint64) bool {
	return !debt.IsZero() && ratio.LessThan(number.NewAmount(minRatio))
}

// position as of now without checkpointing, ratio is 0 without collateral
func (s *service) position(ctx context.Context, owner string) (*core.RatioSnapshot, error) {
	now, err := s.clock.Now(ctx)
	if err != nil {
		return nil, err
	}

	pos := &core.RatioSnapshot{Owner: owner, Tick: now}

	deposit, err := s.accounts.FindDeposit(ctx, s.assets.Collateral.ID, owner)
	if err != nil {
		return nil, err
	}

	borrow, err := s.accounts.FindBorrow(ctx, owner)
	if err != nil {
		return nil, err
	}

	if pos.Debt, err = compound.BorrowDebt(borrow, s.params.BorrowRate, now); err != nil {
		return nil, err
	}

	if deposit.Principal.IsZero() {
		return pos, nil
	}

	if pos.Collateral, err = compound.DepositBalance(deposit, s.params.DepositRate, now); err != nil {
		return nil, err
	}

	if pos.Debt.IsZero() {
		pos.Ratio = compound.MaxRatio
		return pos, nil
	}

	price, err := s.price(ctx)
	if err != nil {
		return nil, err
	}

	if pos.Ratio, err = compound.Ratio(pos.Collateral, pos.Debt, price, s.prices.Scale()); err != nil {
		return nil, err
	}

	pos.Liquidatable = isLiquidatable(pos.Ratio, pos.Debt, s.params.MinRatio)
	return pos, nil
}
