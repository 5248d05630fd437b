package ledger

import (
	"context"
	"lending/core"
	"lending/service/custody"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.ledger.Deposit(ctx, unknownAsset, "alice", amt(10))
	assert.ErrorIs(t, err, core.ErrUnsupportedAsset)

	_, err = f.ledger.Deposit(ctx, collateralAsset, "alice", amt(0))
	assert.ErrorIs(t, err, core.ErrZeroAmount)

	_, err = f.ledger.Deposit(ctx, collateralAsset, "", amt(10))
	assert.ErrorIs(t, err, core.ErrInvalidOwner)

	require.Nil(t, f.vault.Approve(collateralAsset, "alice", amt(1000)))
	f.clock.Set(7)
	event, err := f.ledger.Deposit(ctx, collateralAsset, "alice", amt(1000))
	require.Nil(t, err)
	assert.Equal(t, core.EventKindDeposit, event.Kind)
	assert.Equal(t, "1000", event.Amount.String())
	assert.Equal(t, uint64(7), event.Tick)

	d := f.depositOf(t, collateralAsset, "alice")
	assert.Equal(t, "1000", d.Principal.String())
	assert.Equal(t, uint64(7), d.LastAccrualTime)

	held, _ := f.vault.BalanceHeld(ctx, collateralAsset)
	assert.Equal(t, "1000", held.String())
}

func TestDepositCustodyFailureLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.ledger.Deposit(ctx, baseAsset, "alice", amt(10))
	assert.ErrorIs(t, err, core.ErrCustodyUnavailable)
	assert.ErrorIs(t, err, custody.ErrInsufficientAllowance)

	assert.True(t, f.depositOf(t, baseAsset, "alice").Principal.IsZero())
	assert.Empty(t, f.events(t))
}

func TestDepositReplayedTrace(t *testing.T) {
	f := newFixture(t)
	ctx := WithTraceID(context.Background(), "0b6f8c3e-2d57-4c0e-9a43-51f0e7a1c2d4")

	require.Nil(t, f.vault.Approve(collateralAsset, "alice", amt(200)))
	_, err := f.ledger.Deposit(ctx, collateralAsset, "alice", amt(100))
	require.Nil(t, err)

	_, err = f.ledger.Deposit(ctx, collateralAsset, "alice", amt(100))
	assert.ErrorIs(t, err, core.ErrDuplicateTrace)

	assert.Equal(t, "100", f.depositOf(t, collateralAsset, "alice").Principal.String())
	held, _ := f.vault.BalanceHeld(ctx, collateralAsset)
	assert.Equal(t, "100", held.String())
	assert.Len(t, f.events(t), 1)
}

func TestBalanceOf(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.ledger.BalanceOf(ctx, unknownAsset, "alice")
	assert.ErrorIs(t, err, core.ErrUnsupportedAsset)

	balance, err := f.ledger.BalanceOf(ctx, baseAsset, "alice")
	require.Nil(t, err)
	assert.True(t, balance.IsZero())

	f.clock.Set(1)
	f.deposit(t, baseAsset, "alice", 1000)

	f.clock.Set(101)
	for i := 0; i < 3; i++ {
		balance, err = f.ledger.BalanceOf(ctx, baseAsset, "alice")
		require.Nil(t, err)
		assert.Equal(t, "1030", balance.String(), "views never checkpoint")
	}

	// interest on the pre-deposit principal is checkpointed first
	f.deposit(t, baseAsset, "alice", 500)
	d := f.depositOf(t, baseAsset, "alice")
	assert.Equal(t, "1500", d.Principal.String())
	assert.Equal(t, "30", d.AccruedInterest.String())

	f.clock.Set(201)
	balance, err = f.ledger.BalanceOf(ctx, baseAsset, "alice")
	require.Nil(t, err)
	// 1500 + 30 + 1500*3*100/10000
	assert.Equal(t, "1575", balance.String())
}

func TestBalanceFromTickZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// a deposit at tick 0 leaves the account looking never checkpointed
	f.deposit(t, baseAsset, "alice", 1000)
	f.clock.Set(100)

	balance, err := f.ledger.BalanceOf(ctx, baseAsset, "alice")
	require.Nil(t, err)
	assert.Equal(t, "1000", balance.String())
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.ledger.Withdraw(ctx, unknownAsset, "alice", amt(1))
	assert.ErrorIs(t, err, core.ErrUnsupportedAsset)

	_, err = f.ledger.Withdraw(ctx, baseAsset, "alice", amt(1))
	assert.ErrorIs(t, err, core.ErrNoBalance)

	f.clock.Set(1)
	f.deposit(t, baseAsset, "alice", 1000)
	f.fund(t, baseAsset, 1000)
	f.clock.Set(101)

	// validated against principal only, even though 1030 is owed
	_, err = f.ledger.Withdraw(ctx, baseAsset, "alice", amt(1001))
	assert.ErrorIs(t, err, core.ErrInsufficientBalance)

	payout, err := f.ledger.Withdraw(ctx, baseAsset, "alice", amt(400))
	require.Nil(t, err)
	assert.Equal(t, "430", payout.String())

	d := f.depositOf(t, baseAsset, "alice")
	assert.Equal(t, "600", d.Principal.String())
	assert.True(t, d.AccruedInterest.IsZero())
	assert.Equal(t, "430", f.vault.Allowance(baseAsset, "alice").String())

	f.clock.Set(201)
	payout, err = f.ledger.Withdraw(ctx, baseAsset, "alice", amt(0))
	require.Nil(t, err)
	// 600 + 600*3*100/10000
	assert.Equal(t, "618", payout.String())

	d = f.depositOf(t, baseAsset, "alice")
	assert.True(t, d.Principal.IsZero())
	assert.True(t, d.AccruedInterest.IsZero())

	_, err = f.ledger.Withdraw(ctx, baseAsset, "alice", amt(0))
	assert.ErrorIs(t, err, core.ErrNoBalance)

	events := f.events(t)
	require.Len(t, events, 3)
	assert.Equal(t, core.EventKindWithdraw, events[2].Kind)
	assert.Equal(t, "618", events[2].Amount.String())
}

func TestWithdrawCustodyUnavailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.clock.Set(1)
	f.deposit(t, baseAsset, "alice", 1000)
	f.clock.Set(101)

	// the vault holds the principal but not the interest
	_, err := f.ledger.Withdraw(ctx, baseAsset, "alice", amt(0))
	assert.ErrorIs(t, err, core.ErrCustodyUnavailable)

	d := f.depositOf(t, baseAsset, "alice")
	assert.Equal(t, "1000", d.Principal.String())
	assert.Equal(t, uint64(1), d.LastAccrualTime)
	assert.Len(t, f.events(t), 1)
}

func TestClockRegressed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.clock.Set(10)
	f.deposit(t, baseAsset, "alice", 100)

	f.clock.Set(5)
	require.Nil(t, f.vault.Approve(baseAsset, "alice", amt(100)))
	_, err := f.ledger.Deposit(ctx, baseAsset, "alice", amt(100))
	assert.ErrorIs(t, err, core.ErrClockRegressed)

	_, err = f.ledger.BalanceOf(ctx, baseAsset, "alice")
	assert.ErrorIs(t, err, core.ErrClockRegressed)
}
