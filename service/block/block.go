package block

import (
	"context"
	"lending/core"
	"lending/internal/compound"
	"time"
)

type service struct {
	genesis         int64
	secondsPerBlock int64
	now             func() time.Time
}

// New new block clock, one tick every SecondsPerBlock seconds after Genesis
func New(app core.App) core.IClock {
	return &service{
		genesis:         app.Genesis,
		secondsPerBlock: app.SecondsPerBlock,
		now:             time.Now,
	}
}

// Now current block
func (s *service) Now(ctx context.Context) (uint64, error) {
	return compound.CurrentBlock(s.now(), s.genesis, s.secondsPerBlock)
}
