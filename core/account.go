package core

import (
	"context"
	"lending/pkg/number"
)

// Changeset staged writes of one ledger operation, committed all at once
type Changeset struct {
	Deposits []*Deposit
	Borrows  []*Borrow
	Events   []*Event
}

// AddDeposit stage a deposit record
func (c *Changeset) AddDeposit(d *Deposit) *Changeset {
	c.Deposits = append(c.Deposits, d)
	return c
}

// AddBorrow stage a borrow record
func (c *Changeset) AddBorrow(b *Borrow) *Changeset {
	c.Borrows = append(c.Borrows, b)
	return c
}

// AddEvent stage an event
func (c *Changeset) AddEvent(e *Event) *Changeset {
	c.Events = append(c.Events, e)
	return c
}

// SettleFunc runs inside the commit boundary of Apply, an error aborts the commit
type SettleFunc func(ctx context.Context) error

// IAccountStore account store interface
type IAccountStore interface {
	// FindDeposit returns a zero record (Version 0) when the key has never been written
	FindDeposit(ctx context.Context, assetID, owner string) (*Deposit, error)
	// FindBorrow returns a zero record (Version 0) when the owner never borrowed
	FindBorrow(ctx context.Context, owner string) (*Borrow, error)
	// ListBorrows borrow accounts with id > fromID, ordered by id
	ListBorrows(ctx context.Context, fromID uint64, limit int) ([]*Borrow, error)
	// Apply writes the changeset atomically. settle may be nil.
	Apply(ctx context.Context, cs *Changeset, settle SettleFunc) error
}

// RatioSnapshot collateral ratio of a borrower at a tick
type RatioSnapshot struct {
	Owner        string        `json:"owner"`
	Ratio        number.Amount `json:"ratio"`
	Debt         number.Amount `json:"debt"`
	Collateral   number.Amount `json:"collateral"`
	Tick         uint64        `json:"tick"`
	Liquidatable bool          `json:"liquidatable"`
}

// IRatioStore ratio snapshot cache
type IRatioStore interface {
	Save(ctx context.Context, snapshots ...*RatioSnapshot) error
	Find(ctx context.Context, owner string) (*RatioSnapshot, bool, error)
	ListLiquidatable(ctx context.Context) ([]*RatioSnapshot, error)
}

// IAccountService borrower monitoring
type IAccountService interface {
	Snapshot(ctx context.Context, owner string) (*RatioSnapshot, error)
	// Scan snapshots every borrower and caches the results
	Scan(ctx context.Context) ([]*RatioSnapshot, error)
}
