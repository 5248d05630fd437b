package publisher

import (
	"context"
	"errors"
	"fmt"
	"lending/core"
	"lending/pkg/number"
	"lending/store/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkpoint struct {
	id uint64
}

func (c *checkpoint) Load(ctx context.Context) (uint64, error) {
	return c.id, nil
}

func (c *checkpoint) Save(ctx context.Context, id uint64) error {
	c.id = id
	return nil
}

type recorder struct {
	events []*core.Event
	err    error
}

func (r *recorder) Publish(ctx context.Context, events ...*core.Event) error {
	if r.err != nil {
		return r.err
	}

	r.events = append(r.events, events...)
	return nil
}

func seed(t *testing.T, store *memory.Store, n int) {
	for i := 0; i < n; i++ {
		cs := &core.Changeset{}
		cs.AddEvent(&core.Event{
			TraceID: fmt.Sprintf("trace-%d", i),
			Kind:    core.EventKindDeposit,
			Owner:   "alice",
			Amount:  number.NewAmount(uint64(i + 1)),
		})
		require.Nil(t, store.Apply(context.Background(), cs, nil))
	}
}

func TestPublisherRun(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, 3)

	c := &checkpoint{}
	r := &recorder{}
	w := New(store, r, c)

	n, err := w.run(ctx)
	require.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint64(3), c.id)
	require.Len(t, r.events, 3)
	assert.Equal(t, "1", r.events[0].Amount.String())

	// nothing new
	n, err = w.run(ctx)
	require.Nil(t, err)
	assert.Equal(t, 0, n)

	seed(t, store, 2)
	n, err = w.run(ctx)
	require.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(5), c.id)
	assert.Len(t, r.events, 5)
}

func TestPublisherKeepsCheckpointOnFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, 2)

	c := &checkpoint{}
	r := &recorder{err: errors.New("broker down")}
	w := New(store, r, c)

	_, err := w.run(ctx)
	assert.NotNil(t, err)
	assert.Equal(t, uint64(0), c.id)

	r.err = nil
	n, err := w.run(ctx)
	require.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint64(2), c.id)
}

func TestPublisherStops(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w := New(memory.New(), &recorder{}, &checkpoint{})
	assert.ErrorIs(t, w.Run(ctx), context.DeadlineExceeded)
}
