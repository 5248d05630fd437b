package ledger

import (
	"context"
	"errors"
	"fmt"
	"lending/core"
	"lending/pkg/id"
	"lending/pkg/metric"
	"lending/pkg/number"
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
)

type service struct {
	// one writer at a time across all owners, views share the read lock
	mu sync.RWMutex

	assets   core.Assets
	params   core.Params
	accounts core.IAccountStore
	prices   core.IPriceFeed
	clock    core.IClock
	custody  core.ICustody
}

// New new ledger service
func New(
	assets core.Assets,
	params core.Params,
	accounts core.IAccountStore,
	prices core.IPriceFeed,
	clock core.IClock,
	custody core.ICustody,
) core.ILedgerService {
	return &service{
		assets:   assets,
		params:   params,
		accounts: accounts,
		prices:   prices,
		clock:    clock,
		custody:  custody,
	}
}

func (s *service) Params() core.Params {
	return s.params
}

func (s *service) Assets() core.Assets {
	return s.assets
}

func (s *service) Borrowers(ctx context.Context, fromID uint64, limit int) ([]*core.Borrow, error) {
	return s.accounts.ListBorrows(ctx, fromID, limit)
}

type traceKey struct{}

// WithTraceID operations started with ctx use traceID for their events and transfers
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceID)
}

func traceIDFrom(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceKey{}).(string); ok && traceID != "" {
		return traceID
	}

	return id.GenTraceID()
}

func (s *service) price(ctx context.Context) (number.Amount, error) {
	price, err := s.prices.PriceOf(ctx, s.assets.Collateral.ID)
	if err != nil {
		return number.Zero, err
	}

	if price.IsZero() {
		return number.Zero, core.ErrInvalidPrice
	}

	return price, nil
}

type movement struct {
	out      bool
	transfer *core.Transfer
}

func transferIn(traceID, assetID, owner string, amount number.Amount) movement {
	return movement{transfer: &core.Transfer{TraceID: traceID, AssetID: assetID, Owner: owner, Amount: amount}}
}

func transferOut(traceID, assetID, owner string, amount number.Amount) movement {
	return movement{out: true, transfer: &core.Transfer{TraceID: traceID, AssetID: assetID, Owner: owner, Amount: amount}}
}

// commit checks custody can pay every outflow, then writes cs with the transfers
// running inside the store's commit boundary, ins before outs
func (s *service) commit(ctx context.Context, cs *core.Changeset, moves ...movement) error {
	var ins, outs []*core.Transfer
	for _, m := range moves {
		if m.transfer.Amount.IsZero() {
			continue
		}

		if m.out {
			outs = append(outs, m.transfer)
		} else {
			ins = append(ins, m.transfer)
		}
	}

	for _, t := range outs {
		held, err := s.custody.BalanceHeld(ctx, t.AssetID)
		if err != nil {
			return fmt.Errorf("%w: %w", core.ErrCustodyUnavailable, err)
		}

		if held.LessThan(t.Amount) {
			return fmt.Errorf("%w: holding %s of %s, paying %s", core.ErrCustodyUnavailable, held, t.AssetID, t.Amount)
		}
	}

	return s.accounts.Apply(ctx, cs, func(ctx context.Context) error {
		for _, t := range ins {
			if err := s.custody.TransferIn(ctx, t); err != nil {
				return fmt.Errorf("%w: %w", core.ErrCustodyUnavailable, err)
			}
		}

		for _, t := range outs {
			if err := s.custody.TransferOut(ctx, t); err != nil {
				return fmt.Errorf("%w: %w", core.ErrCustodyUnavailable, err)
			}
		}

		return nil
	})
}

func newEvent(traceID string, kind core.EventKind, owner, assetID string, amount number.Amount, tick uint64) *core.Event {
	return &core.Event{
		TraceID: traceID,
		Kind:    kind,
		Owner:   owner,
		AssetID: assetID,
		Amount:  amount,
		Tick:    tick,
		Data:    core.EventData{}.Format(),
	}
}

func observe(ctx context.Context, operation string, start time.Time, err *error) {
	metric.ObserveOperation(operation, start, *err)
	if *err == nil {
		return
	}

	log := logger.FromContext(ctx).WithField("operation", operation).WithError(*err)
	if errors.Is(*err, core.ErrCustodyUnavailable) || errors.Is(*err, core.ErrArithmeticOverflow) {
		log.Errorln("ledger operation failed")
	} else {
		log.Debugln("ledger operation rejected")
	}
}

func overflow(err error) error {
	return fmt.Errorf("%w: %w", core.ErrArithmeticOverflow, err)
}

func validOwner(owner string) error {
	if owner == "" {
		return core.ErrInvalidOwner
	}

	return nil
}
