package publisher

import (
	"context"
	"lending/core"
	"lending/pkg/metric"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
)

const (
	checkpointKey = "publisher_checkpoint"
	limit         = 500
)

// Checkpoint id of the last published event
type Checkpoint interface {
	Load(ctx context.Context) (uint64, error)
	Save(ctx context.Context, id uint64) error
}

type propertyCheckpoint struct {
	store property.Store
	key   string
}

// PropertyCheckpoint checkpoint kept in the property store
func PropertyCheckpoint(store property.Store) Checkpoint {
	return &propertyCheckpoint{store: store, key: checkpointKey}
}

func (c *propertyCheckpoint) Load(ctx context.Context) (uint64, error) {
	v, err := c.store.Get(ctx, c.key)
	if err != nil {
		return 0, err
	}

	if n := v.Int64(); n > 0 {
		return uint64(n), nil
	}

	return 0, nil
}

func (c *propertyCheckpoint) Save(ctx context.Context, id uint64) error {
	return c.store.Save(ctx, c.key, int64(id))
}

// Publisher forwards the event log to the event bus in id order
type Publisher struct {
	events     core.IEventStore
	publisher  core.IEventPublisher
	checkpoint Checkpoint
}

// New new event publisher worker
func New(events core.IEventStore, publisher core.IEventPublisher, checkpoint Checkpoint) *Publisher {
	return &Publisher{
		events:     events,
		publisher:  publisher,
		checkpoint: checkpoint,
	}
}

// Run publish until ctx is done
func (w *Publisher) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "publisher")
	ctx = logger.WithContext(ctx, log)

	dur := time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if n, err := w.run(ctx); err != nil {
				dur = 5 * time.Second
			} else if n < limit {
				dur = time.Second
			} else {
				dur = 100 * time.Millisecond
			}
		}
	}
}

// run publishes one batch and advances the checkpoint, returns the batch size
func (w *Publisher) run(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	fromID, err := w.checkpoint.Load(ctx)
	if err != nil {
		log.WithError(err).Errorln("checkpoint.Load", checkpointKey)
		return 0, err
	}

	events, err := w.events.List(ctx, fromID, limit)
	if err != nil {
		log.WithError(err).Errorln("events.List")
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	if err := w.publisher.Publish(ctx, events...); err != nil {
		log.WithError(err).Errorln("publisher.Publish")
		return 0, err
	}

	metric.AddPublished(len(events))

	last := events[len(events)-1].ID
	if err := w.checkpoint.Save(ctx, last); err != nil {
		log.WithError(err).Errorln("checkpoint.Save", checkpointKey)
		return 0, err
	}

	log.WithField("from", fromID).WithField("to", last).Debugln("events published")
	return len(events), nil
}
