package ledger

import (
	"context"
	"errors"
	"fmt"
	"lending/core"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestConcurrentBorrowsKeepMinRatio(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	f := newFixture(t)
	f.fund(t, baseAsset, 10000)
	f.clock.Set(1)
	f.deposit(t, collateralAsset, "alice", 1000)

	var ok, rejected int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.ledger.Borrow(ctx, baseAsset, "alice", amt(100))
			switch {
			case err == nil:
				atomic.AddInt32(&ok, 1)
			case errors.Is(err, core.ErrInsufficientCollateral):
				atomic.AddInt32(&rejected, 1)
			default:
				t.Error(err)
			}
		}()
	}

	wg.Wait()

	// 600 keeps 16666, 700 would be 14285
	assert.Equal(t, int32(6), ok)
	assert.Equal(t, int32(14), rejected)
	assert.Equal(t, "600", f.borrowOf(t, "alice").AmountBorrowed.String())

	ratio, err := f.ledger.CollateralRatioOf(ctx, collateralAsset, "alice")
	require.Nil(t, err)
	assert.False(t, ratio.LessThan(amt(15000)))
}

func TestConcurrentDeposits(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	f := newFixture(t)
	f.clock.Set(1)

	owners := []string{"alice", "bob", "carol"}
	for _, owner := range owners {
		require.Nil(t, f.vault.Approve(baseAsset, owner, amt(1000)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()
			_, err := f.ledger.Deposit(ctx, baseAsset, owner, amt(10))
			assert.Nil(t, err)
		}(owners[i%len(owners)])
	}

	wg.Wait()

	for _, owner := range owners {
		balance, err := f.ledger.BalanceOf(ctx, baseAsset, owner)
		require.Nil(t, err)
		assert.Equal(t, "100", balance.String(), fmt.Sprintf("balance of %s", owner))
	}

	assert.Len(t, f.events(t), 30)
	held, _ := f.vault.BalanceHeld(ctx, baseAsset)
	assert.Equal(t, "300", held.String())
}
