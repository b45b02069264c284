package pipeline

import (
	"context"
	"fmt"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/connectors"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

type simpleReceiverOpt func(receiver *SimpleReceiver)

type ReceiverFunc[T interface{}] func(context.Context, chan<- T) error

type Receiver[T interface{}] interface {
	Component
	Poll(context.Context, chan<- T) error
}

type ReceiverAdapter[T interface{}] struct {
	id     string
	poller ReceiverFunc[T]
}

func NewReceiverAdapter[T interface{}](
	id string,
	poller ReceiverFunc[T],
) *ReceiverAdapter[T] {
	return &ReceiverAdapter[T]{id, poller}
}

func (r *ReceiverAdapter[T]) GetId() string {
	return r.id
}

func (r *ReceiverAdapter[T]) Poll(ctx context.Context, ch chan<- T) error {
	return r.poller(ctx, ch)
}

// SimpleReceiver pulls one payload from a connector per poll and hands it to
// the decoder for the telemetry type being polled.
type SimpleReceiver struct {
	id             string
	connector      connectors.Connector
	metricsDecoder MetricsDecoderFunc
	eventsDecoder  EventsDecoderFunc
	logsDecoder    LogsDecoderFunc
}

func NewSimpleReceiver(
	id string,
	connector connectors.Connector,
	simpleReceiverOpts ...simpleReceiverOpt,
) *SimpleReceiver {
	receiver := &SimpleReceiver{
		id:        id,
		connector: connector,
	}

	for _, opt := range simpleReceiverOpts {
		opt(receiver)
	}

	return receiver
}

func (r *SimpleReceiver) GetId() string {
	return r.id
}

func WithMetricsDecoder(decoder MetricsDecoderFunc) simpleReceiverOpt {
	return func(r *SimpleReceiver) {
		r.metricsDecoder = decoder
	}
}

func WithEventsDecoder(decoder EventsDecoderFunc) simpleReceiverOpt {
	return func(r *SimpleReceiver) {
		r.eventsDecoder = decoder
	}
}

func WithLogsDecoder(decoder LogsDecoderFunc) simpleReceiverOpt {
	return func(r *SimpleReceiver) {
		r.logsDecoder = decoder
	}
}

func (s *SimpleReceiver) PollMetrics(
	ctx context.Context,
	out chan<- model.Metric,
) error {
	if s.metricsDecoder == nil {
		return fmt.Errorf("receiver %s has no metrics decoder", s.id)
	}

	data, err := s.connector.Request(ctx)
	if err != nil {
		return err
	}

	defer data.Close()

	return s.metricsDecoder(s, data, out)
}

func (s *SimpleReceiver) PollEvents(
	ctx context.Context,
	out chan<- simevents.Event,
) error {
	if s.eventsDecoder == nil {
		return fmt.Errorf("receiver %s has no events decoder", s.id)
	}

	data, err := s.connector.Request(ctx)
	if err != nil {
		return err
	}

	defer data.Close()

	return s.eventsDecoder(s, data, out)
}

func (s *SimpleReceiver) PollLogs(
	ctx context.Context,
	out chan<- model.Log,
) error {
	if s.logsDecoder == nil {
		return fmt.Errorf("receiver %s has no logs decoder", s.id)
	}

	data, err := s.connector.Request(ctx)
	if err != nil {
		return err
	}

	defer data.Close()

	return s.logsDecoder(s, data, out)
}
