package event

import (
	"context"
	"encoding/json"
	"lending/core"

	"github.com/fox-one/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes events to a kafka topic keyed by owner,
// so events of one account keep their order within a partition
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafka new kafka publisher
func NewKafka(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events ...*core.Event) error {
	msgs, err := Messages(events)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

// Close flush and close the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Messages encode events as kafka messages
func Messages(events []*core.Event) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		bs, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.Owner),
			Value: bs,
			Headers: []kafka.Header{
				{Key: "kind", Value: []byte(e.Kind)},
				{Key: "trace_id", Value: []byte(e.TraceID)},
			},
		})
	}

	return msgs, nil
}

type logPublisher struct{}

// NewLog publisher that only logs, used when no broker is configured
func NewLog() core.IEventPublisher {
	return logPublisher{}
}

func (logPublisher) Publish(ctx context.Context, events ...*core.Event) error {
	log := logger.FromContext(ctx)
	for _, e := range events {
		log.WithField("id", e.ID).
			WithField("kind", e.Kind).
			WithField("owner", e.Owner).
			WithField("amount", e.Amount.String()).
			Infoln("event")
	}

	return nil
}
