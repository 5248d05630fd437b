package custody

import (
	"context"
	"errors"
	"fmt"
	"lending/core"
	"lending/pkg/number"
	"sync"
)

var (
	// ErrInsufficientAllowance owner has not made enough funds available
	ErrInsufficientAllowance = errors.New("custody: insufficient allowance")
	// ErrInsufficientLiquidity custody does not hold enough of the asset
	ErrInsufficientLiquidity = errors.New("custody: insufficient liquidity")
)

// Vault in-process custody. Owners approve funds that TransferIn can pull,
// TransferOut pays held funds back into the owner's approved balance.
type Vault struct {
	mu         sync.Mutex
	held       map[string]number.Amount
	allowances map[string]map[string]number.Amount
	traces     map[string]bool
}

// NewVault empty vault
func NewVault() *Vault {
	return &Vault{
		held:       map[string]number.Amount{},
		allowances: map[string]map[string]number.Amount{},
		traces:     map[string]bool{},
	}
}

// Fund add liquidity the vault holds without an owner, e.g. the base asset lent out by borrows
func (v *Vault) Fund(assetID string, amount number.Amount) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	held, err := v.held[assetID].Add(amount)
	if err != nil {
		return err
	}

	v.held[assetID] = held
	return nil
}

// Approve make amount more of owner's funds available to TransferIn
func (v *Vault) Approve(assetID, owner string, amount number.Amount) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.credit(assetID, owner, amount)
}

// Allowance funds of owner TransferIn may still pull
func (v *Vault) Allowance(assetID, owner string) number.Amount {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.allowances[assetID][owner]
}

// TransferIn pull funds from the owner into the vault
func (v *Vault) TransferIn(ctx context.Context, transfer *core.Transfer) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seen(transfer.TraceID) {
		return nil
	}

	allowance := v.allowances[transfer.AssetID][transfer.Owner]
	left, err := allowance.Sub(transfer.Amount)
	if err != nil {
		return fmt.Errorf("%w: %s of %s wants %s, approved %s", ErrInsufficientAllowance, transfer.AssetID, transfer.Owner, transfer.Amount, allowance)
	}

	held, err := v.held[transfer.AssetID].Add(transfer.Amount)
	if err != nil {
		return err
	}

	v.owners(transfer.AssetID)[transfer.Owner] = left
	v.held[transfer.AssetID] = held
	v.remember(transfer.TraceID)
	return nil
}

// TransferOut pay funds held by the vault to the owner
func (v *Vault) TransferOut(ctx context.Context, transfer *core.Transfer) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seen(transfer.TraceID) {
		return nil
	}

	held, err := v.held[transfer.AssetID].Sub(transfer.Amount)
	if err != nil {
		return fmt.Errorf("%w: %s wants %s, holding %s", ErrInsufficientLiquidity, transfer.AssetID, transfer.Amount, v.held[transfer.AssetID])
	}

	if err := v.credit(transfer.AssetID, transfer.Owner, transfer.Amount); err != nil {
		return err
	}

	v.held[transfer.AssetID] = held
	v.remember(transfer.TraceID)
	return nil
}

// BalanceHeld amount of asset in the vault
func (v *Vault) BalanceHeld(ctx context.Context, assetID string) (number.Amount, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.held[assetID], nil
}

func (v *Vault) owners(assetID string) map[string]number.Amount {
	owners, ok := v.allowances[assetID]
	if !ok {
		owners = map[string]number.Amount{}
		v.allowances[assetID] = owners
	}

	return owners
}

func (v *Vault) credit(assetID, owner string, amount number.Amount) error {
	owners := v.owners(assetID)
	allowance, err := owners[owner].Add(amount)
	if err != nil {
		return err
	}

	owners[owner] = allowance
	return nil
}

// transfers are idempotent by trace id
func (v *Vault) seen(traceID string) bool {
	return traceID != "" && v.traces[traceID]
}

func (v *Vault) remember(traceID string) {
	if traceID != "" {
		v.traces[traceID] = true
	}
}
