package memory

import (
	"context"
	"lending/core"
	"sort"
	"sync"
	"time"

	"github.com/fox-one/pkg/store/db"
)

type depositKey struct {
	assetID string
	owner   string
}

// Store in-memory account and event store
type Store struct {
	mu       sync.RWMutex
	deposits map[depositKey]*core.Deposit
	borrows  map[string]*core.Borrow
	events   []*core.Event
	traces   map[string]bool
	seq      uint64
}

// New new in-memory store
func New() *Store {
	return &Store{
		deposits: map[depositKey]*core.Deposit{},
		borrows:  map[string]*core.Borrow{},
		traces:   map[string]bool{},
	}
}

var (
	_ core.IAccountStore = (*Store)(nil)
	_ core.IEventStore   = (*Store)(nil)
)

func (s *Store) FindDeposit(ctx context.Context, assetID, owner string) (*core.Deposit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d, ok := s.deposits[depositKey{assetID, owner}]; ok {
		return d.Clone(), nil
	}

	return core.NewDeposit(assetID, owner), nil
}

func (s *Store) FindBorrow(ctx context.Context, owner string) (*core.Borrow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.borrows[owner]; ok {
		return b.Clone(), nil
	}

	return core.NewBorrow(owner), nil
}

func (s *Store) ListBorrows(ctx context.Context, fromID uint64, limit int) ([]*core.Borrow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var borrows []*core.Borrow
	for _, b := range s.borrows {
		if b.ID > fromID {
			borrows = append(borrows, b.Clone())
		}
	}

	sort.Slice(borrows, func(i, j int) bool {
		return borrows[i].ID < borrows[j].ID
	})

	if limit > 0 && len(borrows) > limit {
		borrows = borrows[:limit]
	}

	return borrows, nil
}

// Apply check every version and event trace id, settle, then write. Nothing is written when any step fails.
func (s *Store) Apply(ctx context.Context, cs *core.Changeset, settle core.SettleFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range cs.Deposits {
		var version int64
		if stored, ok := s.deposits[depositKey{d.AssetID, d.Owner}]; ok {
			version = stored.Version
		}

		if version != d.Version {
			return db.ErrOptimisticLock
		}
	}

	for _, b := range cs.Borrows {
		var version int64
		if stored, ok := s.borrows[b.Owner]; ok {
			version = stored.Version
		}

		if version != b.Version {
			return db.ErrOptimisticLock
		}
	}

	traces := map[string]bool{}
	for _, e := range cs.Events {
		if e.TraceID == "" {
			continue
		}

		if s.traces[e.TraceID] || traces[e.TraceID] {
			return core.ErrDuplicateTrace
		}

		traces[e.TraceID] = true
	}

	if settle != nil {
		if err := settle(ctx); err != nil {
			return err
		}
	}

	now := time.Now()
	for _, d := range cs.Deposits {
		d = d.Clone()
		if d.Version == 0 {
			s.seq++
			d.ID = s.seq
			d.CreatedAt = now
		}

		d.Version++
		d.UpdatedAt = now
		s.deposits[depositKey{d.AssetID, d.Owner}] = d
	}

	for _, b := range cs.Borrows {
		b = b.Clone()
		if b.Version == 0 {
			s.seq++
			b.ID = s.seq
			b.CreatedAt = now
		}

		b.Version++
		b.UpdatedAt = now
		s.borrows[b.Owner] = b
	}

	for _, e := range cs.Events {
		c := *e
		c.ID = uint64(len(s.events)) + 1
		c.CreatedAt = now
		s.events = append(s.events, &c)
	}

	for traceID := range traces {
		s.traces[traceID] = true
	}

	return nil
}

func (s *Store) List(ctx context.Context, fromID uint64, limit int) ([]*core.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if fromID >= uint64(len(s.events)) {
		return nil, nil
	}

	events := s.events[fromID:]
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	out := make([]*core.Event, len(events))
	for i, e := range events {
		c := *e
		out[i] = &c
	}

	return out, nil
}
