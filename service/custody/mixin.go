package custody

import (
	"context"
	"fmt"
	"lending/core"
	"lending/pkg/number"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/logger"
)

const paymentStatusPaid = "paid"

// Mixin custody backed by a mixin dapp wallet. Owners are mixin user ids,
// TransferIn expects the owner to have paid the dapp with the transfer's trace id.
type Mixin struct {
	client *mixin.Client
	pin    string
	assets core.Assets
}

// NewMixin new mixin wallet custody
func NewMixin(client *mixin.Client, pin string, assets core.Assets) *Mixin {
	return &Mixin{
		client: client,
		pin:    pin,
		assets: assets,
	}
}

// TransferIn verify the owner's payment to the dapp
func (m *Mixin) TransferIn(ctx context.Context, transfer *core.Transfer) error {
	input := mixin.TransferInput{
		AssetID:    transfer.AssetID,
		OpponentID: m.client.ClientID,
		Amount:     transfer.Amount.Decimal(m.decimals(transfer.AssetID)),
		TraceID:    transfer.TraceID,
		Memo:       transfer.Memo,
	}

	payment, err := m.client.VerifyPayment(ctx, input)
	if err != nil {
		return err
	}

	if payment.Status != paymentStatusPaid {
		return fmt.Errorf("%w: payment %s is %s", ErrInsufficientAllowance, transfer.TraceID, payment.Status)
	}

	return nil
}

// TransferOut transfer from the dapp wallet to the owner
func (m *Mixin) TransferOut(ctx context.Context, transfer *core.Transfer) error {
	input := &mixin.TransferInput{
		AssetID:    transfer.AssetID,
		OpponentID: transfer.Owner,
		Amount:     transfer.Amount.Decimal(m.decimals(transfer.AssetID)),
		TraceID:    transfer.TraceID,
		Memo:       transfer.Memo,
	}

	snapshot, err := m.client.Transfer(ctx, input, m.pin)
	if err != nil {
		if mixin.IsErrorCodes(err, mixin.InsufficientBalance) {
			return fmt.Errorf("%w: %v", ErrInsufficientLiquidity, err)
		}

		return err
	}

	logger.FromContext(ctx).WithField("snapshot", snapshot.SnapshotID).Debugln("transfer out", transfer.TraceID)
	return nil
}

// BalanceHeld wallet balance of asset
func (m *Mixin) BalanceHeld(ctx context.Context, assetID string) (number.Amount, error) {
	asset, err := m.client.ReadAsset(ctx, assetID)
	if err != nil {
		return number.Zero, err
	}

	return number.AmountFromDecimal(asset.Balance, m.decimals(assetID))
}

// mixin amounts carry 8 decimals unless the asset says otherwise
func (m *Mixin) decimals(assetID string) int32 {
	if asset, ok := m.assets.Find(assetID); ok && asset.Decimals > 0 {
		return asset.Decimals
	}

	return 8
}
