package core

import (
	"context"
	"lending/pkg/number"
)

// Transfer movement of funds between an owner and the ledger's custody
type Transfer struct {
	TraceID string        `json:"trace_id,omitempty"`
	AssetID string        `json:"asset_id,omitempty"`
	Owner   string        `json:"owner,omitempty"`
	Amount  number.Amount `json:"amount,omitempty"`
	Memo    string        `json:"memo,omitempty"`
}

// ICustody custody collaborator
type ICustody interface {
	// TransferIn pull funds from the owner into custody
	TransferIn(ctx context.Context, transfer *Transfer) error
	// TransferOut pay funds held in custody out to the owner
	TransferOut(ctx context.Context, transfer *Transfer) error
	// BalanceHeld amount of asset currently held
	BalanceHeld(ctx context.Context, assetID string) (number.Amount, error)
}
