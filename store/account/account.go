package account

import (
	"context"
	"lending/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
)

type accountStore struct {
	db *db.DB
}

// New new account store
func New(db *db.DB) core.IAccountStore {
	return &accountStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Deposit{})
		if err := tx.AutoMigrate(core.Deposit{}).Error; err != nil {
			return err
		}

		tx = db.Update().Model(core.Borrow{})
		if err := tx.AutoMigrate(core.Borrow{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *accountStore) FindDeposit(ctx context.Context, assetID, owner string) (*core.Deposit, error) {
	var deposit core.Deposit
	err := s.db.View().Where("asset_id = ? AND owner = ?", assetID, owner).First(&deposit).Error
	if store.IsErrNotFound(err) {
		return core.NewDeposit(assetID, owner), nil
	}

	return &deposit, err
}

func (s *accountStore) FindBorrow(ctx context.Context, owner string) (*core.Borrow, error) {
	var borrow core.Borrow
	err := s.db.View().Where("owner = ?", owner).First(&borrow).Error
	if store.IsErrNotFound(err) {
		return core.NewBorrow(owner), nil
	}

	return &borrow, err
}

func (s *accountStore) ListBorrows(ctx context.Context, fromID uint64, limit int) ([]*core.Borrow, error) {
	if limit <= 0 {
		limit = 500
	}

	var borrows []*core.Borrow
	if err := s.db.View().Where("id > ?", fromID).Order("id ASC").Limit(limit).Find(&borrows).Error; err != nil {
		return nil, err
	}

	return borrows, nil
}

// Apply writes deposits, borrows and events in one transaction, settle runs last inside it
func (s *accountStore) Apply(ctx context.Context, cs *core.Changeset, settle core.SettleFunc) error {
	return s.db.Tx(func(tx *db.DB) error {
		for _, deposit := range cs.Deposits {
			if err := saveDeposit(tx, deposit); err != nil {
				return err
			}
		}

		for _, borrow := range cs.Borrows {
			if err := saveBorrow(tx, borrow); err != nil {
				return err
			}
		}

		if err := checkTraces(tx, cs.Events); err != nil {
			return err
		}

		for _, event := range cs.Events {
			if err := tx.Update().Create(event).Error; err != nil {
				return err
			}
		}

		if settle != nil {
			return settle(ctx)
		}

		return nil
	})
}

func saveDeposit(tx *db.DB, deposit *core.Deposit) error {
	if deposit.Version == 0 {
		deposit.Version = 1
		return tx.Update().Create(deposit).Error
	}

	version := deposit.Version
	update := tx.Update().Model(deposit).Where("version = ?", version).Updates(map[string]interface{}{
		"principal":         deposit.Principal,
		"accrued_interest":  deposit.AccruedInterest,
		"last_accrual_time": deposit.LastAccrualTime,
		"version":           version + 1,
	})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	deposit.Version = version + 1
	return nil
}

func saveBorrow(tx *db.DB, borrow *core.Borrow) error {
	if borrow.Version == 0 {
		borrow.Version = 1
		return tx.Update().Create(borrow).Error
	}

	version := borrow.Version
	update := tx.Update().Model(borrow).Where("version = ?", version).Updates(map[string]interface{}{
		"amount_borrowed":   borrow.AmountBorrowed,
		"interest_owed":     borrow.InterestOwed,
		"last_accrual_time": borrow.LastAccrualTime,
		"version":           version + 1,
	})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	borrow.Version = version + 1
	return nil
}

// checkTraces rejects events whose trace id is already recorded
func checkTraces(tx *db.DB, events []*core.Event) error {
	var traceIDs []string
	for _, event := range events {
		if event.TraceID != "" {
			traceIDs = append(traceIDs, event.TraceID)
		}
	}

	if len(traceIDs) == 0 {
		return nil
	}

	var count int
	if err := tx.Update().Model(core.Event{}).Where("trace_id IN (?)", traceIDs).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return core.ErrDuplicateTrace
	}

	return nil
}
