package connectors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/segmentio/kafka-go"
)

const (
	defaultKafkaBatchSize = 500
	defaultKafkaMaxWait   = 5 * time.Second
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// KafkaConnector drains a topic the simulation's telemetry relay publishes
// to. Each message value is one record; a request returns up to BatchSize of
// them separated by newlines, or fewer once MaxWait elapses.
type KafkaConnector struct {
	Topic     string
	BatchSize int
	MaxWait   time.Duration
	reader    messageReader
}

func NewKafkaConnector(brokers []string, topic, groupId string) *KafkaConnector {
	return newKafkaConnector(
		topic,
		kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupId,
			MinBytes: 1,
			MaxBytes: 10e6,
			MaxWait:  time.Second,
		}),
	)
}

func newKafkaConnector(topic string, reader messageReader) *KafkaConnector {
	return &KafkaConnector{
		Topic:     topic,
		BatchSize: defaultKafkaBatchSize,
		MaxWait:   defaultKafkaMaxWait,
		reader:    reader,
	}
}

func (c *KafkaConnector) SetBatch(size int, maxWait time.Duration) {
	if size > 0 {
		c.BatchSize = size
	}
	if maxWait > 0 {
		c.MaxWait = maxWait
	}
}

func (c *KafkaConnector) Request(ctx context.Context) (io.ReadCloser, error) {
	readCtx, cancel := context.WithTimeout(ctx, c.MaxWait)
	defer cancel()

	var buf bytes.Buffer
	count := 0

	for count < c.BatchSize {
		msg, err := c.reader.ReadMessage(readCtx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			if errors.Is(err, context.DeadlineExceeded) || readCtx.Err() != nil {
				break
			}

			return nil, fmt.Errorf("read from topic %s: %w", c.Topic, err)
		}

		buf.Write(bytes.TrimRight(msg.Value, "\n"))
		buf.WriteByte('\n')
		count += 1
	}

	log.Debugf("read %d messages from topic %s", count, c.Topic)

	return io.NopCloser(&buf), nil
}

func (c *KafkaConnector) Close() error {
	return c.reader.Close()
}
