package core

import (
	"lending/pkg/number"
	"time"
)

// Borrow borrow account, one base-asset loan per owner
type Borrow struct {
	ID             uint64        `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"-"`
	Owner          string        `sql:"size:64;unique_index:borrow_idx" json:"owner"`
	AmountBorrowed number.Amount `sql:"type:varchar(80)" json:"amount_borrowed"`
	InterestOwed   number.Amount `sql:"type:varchar(80)" json:"interest_owed"`
	// 0 means never checkpointed
	LastAccrualTime uint64    `sql:"default:0" json:"last_accrual_time"`
	Version         int64     `sql:"default:0" json:"version"`
	CreatedAt       time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// NewBorrow zero record for an owner that never borrowed
func NewBorrow(owner string) *Borrow {
	return &Borrow{Owner: owner}
}

// Clone copy of the record, safe to stage changes on
func (b *Borrow) Clone() *Borrow {
	c := *b
	return &c
}

// Debt amount borrowed plus interest owed
func (b *Borrow) Debt() (number.Amount, error) {
	return b.AmountBorrowed.Add(b.InterestOwed)
}

// HasDebt outstanding principal or interest
func (b *Borrow) HasDebt() bool {
	return !b.AmountBorrowed.IsZero() || !b.InterestOwed.IsZero()
}
