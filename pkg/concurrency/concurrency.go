package concurrency

import (
	"context"
	"sync"
)

const (
	// DefaultMax default max
	DefaultMax = 256
)

// GoLimit go limit
type GoLimit struct {
	ch chan struct{}
	wg sync.WaitGroup
}

// NewGoLimit new go limit
func NewGoLimit(max int) *GoLimit {
	if max <= 0 {
		max = DefaultMax
	}

	return &GoLimit{
		ch: make(chan struct{}, max),
	}
}

// Go run fn in a goroutine once a slot is free, returns ctx.Err() when ctx ends first
func (g *GoLimit) Go(ctx context.Context, fn func()) error {
	select {
	case g.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	g.wg.Add(1)
	go func() {
		defer func() {
			<-g.ch
			g.wg.Done()
		}()

		fn()
	}()

	return nil
}

// Wait block until every started fn returned
func (g *GoLimit) Wait() {
	g.wg.Wait()
}
