package account

import (
	"context"
	"lending/core"
	"lending/pkg/concurrency"
	"lending/pkg/metric"
	"sync"

	"github.com/fox-one/pkg/logger"
)

const pageSize = 100

type accountService struct {
	ledger  core.ILedgerService
	ratios  core.IRatioStore
	workers int
}

// New new account service
func New(ledger core.ILedgerService, ratios core.IRatioStore) core.IAccountService {
	return &accountService{
		ledger:  ledger,
		ratios:  ratios,
		workers: 8,
	}
}

func (s *accountService) Snapshot(ctx context.Context, owner string) (*core.RatioSnapshot, error) {
	return s.ledger.Position(ctx, owner)
}

// Scan snapshots and caches every borrower, repaid ones included.
// Only positions with debt are returned.
func (s *accountService) Scan(ctx context.Context) ([]*core.RatioSnapshot, error) {
	log := logger.FromContext(ctx)

	var (
		mu        sync.Mutex
		snapshots []*core.RatioSnapshot
		fromID    uint64
	)

	golimit := concurrency.NewGoLimit(s.workers)

	for {
		borrows, err := s.ledger.Borrowers(ctx, fromID, pageSize)
		if err != nil {
			golimit.Wait()
			return nil, err
		}

		for _, borrow := range borrows {
			fromID = borrow.ID
			owner := borrow.Owner
			err := golimit.Go(ctx, func() {
				snapshot, err := s.ledger.Position(ctx, owner)
				if err != nil {
					log.WithError(err).WithField("owner", owner).Errorln("position")
					return
				}

				mu.Lock()
				snapshots = append(snapshots, snapshot)
				mu.Unlock()
			})

			if err != nil {
				golimit.Wait()
				return nil, err
			}
		}

		if len(borrows) < pageSize {
			break
		}
	}

	golimit.Wait()

	if err := s.ratios.Save(ctx, snapshots...); err != nil {
		log.WithError(err).Errorln("ratios.Save")
		return nil, err
	}

	var (
		indebted []*core.RatioSnapshot
		n        int
	)

	for _, snapshot := range snapshots {
		if snapshot.Debt.IsZero() {
			continue
		}

		indebted = append(indebted, snapshot)
		if snapshot.Liquidatable {
			n++
		}
	}

	metric.SetLiquidatable(n)
	log.WithField("borrowers", len(indebted)).WithField("liquidatable", n).Debugln("scan done")

	return indebted, nil
}
