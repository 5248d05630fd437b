package core

import (
	"lending/pkg/number"
	"time"
)

// Deposit deposit account, keyed by (asset, owner)
type Deposit struct {
	ID              uint64        `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"-"`
	AssetID         string        `sql:"size:36;unique_index:deposit_idx" json:"asset_id"`
	Owner           string        `sql:"size:64;unique_index:deposit_idx" json:"owner"`
	Principal       number.Amount `sql:"type:varchar(80)" json:"principal"`
	AccruedInterest number.Amount `sql:"type:varchar(80)" json:"accrued_interest"`
	// 0 means never checkpointed
	LastAccrualTime uint64    `sql:"default:0" json:"last_accrual_time"`
	Version         int64     `sql:"default:0" json:"version"`
	CreatedAt       time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// NewDeposit zero record for a key that has never been written
func NewDeposit(assetID, owner string) *Deposit {
	return &Deposit{
		AssetID: assetID,
		Owner:   owner,
	}
}

// Clone copy of the record, safe to stage changes on
func (d *Deposit) Clone() *Deposit {
	c := *d
	return &c
}

// Total principal plus accrued interest
func (d *Deposit) Total() (number.Amount, error) {
	return d.Principal.Add(d.AccruedInterest)
}
