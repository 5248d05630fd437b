package ledger

import (
	"context"
	"lending/core"
	"lending/pkg/number"
	"lending/service/block"
	"lending/service/custody"
	"lending/service/oracle"
	"lending/store/memory"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	baseAsset       = "965e5c6e-434c-3fa9-b780-c50f43cd955c"
	collateralAsset = "c6d0c728-2624-429b-8e0d-d9d19b6592fa"
	unknownAsset    = "4d8c508b-91c5-375b-92b0-ee702ed2dac5"
)

var assets = core.Assets{
	Base:       core.Asset{ID: baseAsset, Symbol: "CNB"},
	Collateral: core.Asset{ID: collateralAsset, Symbol: "XIN"},
}

type fixture struct {
	ledger core.ILedgerService
	store  *memory.Store
	vault  *custody.Vault
	clock  *block.Manual
}

func newFixture(t *testing.T, opts ...func(*core.Params)) *fixture {
	return newFixtureWithPrice(t, 1, 1, opts...)
}

func newFixtureWithPrice(t *testing.T, price, scale uint64, opts ...func(*core.Params)) *fixture {
	params := core.DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	f := &fixture{
		store: memory.New(),
		vault: custody.NewVault(),
		clock: block.NewManual(0),
	}

	feed := oracle.NewStatic(map[string]number.Amount{collateralAsset: number.NewAmount(price)}, number.NewAmount(scale))
	f.ledger = New(assets, params, f.store, feed, f.clock, f.vault)
	return f
}

func amt(v uint64) number.Amount {
	return number.NewAmount(v)
}

// deposit approves and deposits amount of asset for owner at the current tick
func (f *fixture) deposit(t *testing.T, assetID, owner string, amount uint64) {
	require.Nil(t, f.vault.Approve(assetID, owner, amt(amount)))
	_, err := f.ledger.Deposit(context.Background(), assetID, owner, amt(amount))
	require.Nil(t, err)
}

func (f *fixture) fund(t *testing.T, assetID string, amount uint64) {
	require.Nil(t, f.vault.Fund(assetID, amt(amount)))
}

func (f *fixture) events(t *testing.T) []*core.Event {
	events, err := f.store.List(context.Background(), 0, 0)
	require.Nil(t, err)
	return events
}

func (f *fixture) borrowOf(t *testing.T, owner string) *core.Borrow {
	b, err := f.store.FindBorrow(context.Background(), owner)
	require.Nil(t, err)
	return b
}

func (f *fixture) depositOf(t *testing.T, assetID, owner string) *core.Deposit {
	d, err := f.store.FindDeposit(context.Background(), assetID, owner)
	require.Nil(t, err)
	return d
}
