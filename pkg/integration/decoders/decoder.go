package decoders

import (
	"errors"
	"io"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/pipeline"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

type decoderOpt func(d *simEventsDecoder)

type simEventsDecoder struct {
	dispatcher *simevents.Dispatcher
	stats      *Stats
	workers    int
	validate   bool
	app        *newrelic.Application
}

// WithWorkers bounds the goroutines decoding one batch. 0 uses GOMAXPROCS.
func WithWorkers(workers int) decoderOpt {
	return func(d *simEventsDecoder) {
		d.workers = workers
	}
}

func WithEnvelopeValidation(validate bool) decoderOpt {
	return func(d *simEventsDecoder) {
		d.validate = validate
	}
}

// WithApplication records each decode pass as an APM transaction.
func WithApplication(app *newrelic.Application) decoderOpt {
	return func(d *simEventsDecoder) {
		d.app = app
	}
}

// NewSimEventsDecoder builds an events decoder that reads raw records, decodes
// them in parallel and writes the events out in stream order. Records that fail
// to read or decode are counted in stats and skipped; only read failures of the
// stream itself are returned.
func NewSimEventsDecoder(
	dispatcher *simevents.Dispatcher,
	stats *Stats,
	opts ...decoderOpt,
) (pipeline.EventsDecoderFunc, error) {
	d := &simEventsDecoder{
		dispatcher: dispatcher,
		stats:      stats,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.dispatcher == nil {
		d.dispatcher = simevents.NewDispatcher()
	}

	if d.stats == nil {
		d.stats = NewStats("simevents-stats", 0)
	}

	reader, err := NewRecordReader(d.validate)
	if err != nil {
		return nil, err
	}

	return func(
		receiver pipeline.EventsReceiver,
		in io.ReadCloser,
		out chan<- simevents.Event,
	) error {
		return d.decode(receiver.GetId(), reader, in, out)
	}, nil
}

func (d *simEventsDecoder) decode(
	receiverId string,
	reader *RecordReader,
	in io.Reader,
	out chan<- simevents.Event,
) error {
	txn := d.app.StartTransaction("simevents/decode")
	defer txn.End()

	txn.AddAttribute("receiver", receiverId)

	records, readErrs := reader.Read(in)

	for _, err := range readErrs {
		if !errors.Is(err, ErrMalformedRecord) {
			txn.NoticeError(err)
			return err
		}

		log.Warnf("%s: %v", receiverId, err)
		d.stats.recordMalformed(err)
	}

	log.Debugf("%s: decoding %d records", receiverId, len(records))

	results := d.dispatcher.DecodeBatch(records, d.workers)

	failed := 0
	for _, res := range results {
		name := records[res.Index].Name

		if res.Err != nil {
			failed += 1
			d.stats.recordFailure(name, res.Err)
			continue
		}

		if res.Event.IsUnrecognized() {
			d.stats.recordUnrecognized(name)
		} else {
			d.stats.recordDecoded(name)
		}

		out <- res.Event
	}

	txn.AddAttribute("records", len(records))
	txn.AddAttribute("malformed", len(readErrs))
	txn.AddAttribute("failed", failed)

	return nil
}
