package block

import (
	"context"
	"sync/atomic"
)

// Manual clock that only moves when told to
type Manual struct {
	tick atomic.Uint64
}

// NewManual manual clock starting at tick
func NewManual(tick uint64) *Manual {
	m := &Manual{}
	m.tick.Store(tick)
	return m
}

// Now current tick
func (m *Manual) Now(ctx context.Context) (uint64, error) {
	return m.tick.Load(), nil
}

// Set move the clock to tick, which may be earlier than the current one
func (m *Manual) Set(tick uint64) {
	m.tick.Store(tick)
}

// Advance move the clock forward by n ticks
func (m *Manual) Advance(n uint64) uint64 {
	return m.tick.Add(n)
}
