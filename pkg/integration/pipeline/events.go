package pipeline

import (
	"context"
	"io"

	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
)

type EventsReceiver interface {
	Component
	PollEvents(ctx context.Context, writer chan<- simevents.Event) error
}

type EventsDecoderFunc func(
	receiver EventsReceiver,
	in io.ReadCloser,
	out chan<- simevents.Event,
) error

type EventsExporter interface {
	Component
	ExportEvents(ctx context.Context, events []simevents.Event) error
}

type EventsPipeline pipeline[simevents.Event]

func NewEventsPipeline(id string) *EventsPipeline {
	p := EventsPipeline(newPipeline[simevents.Event](id))
	return &p
}

func (p *EventsPipeline) GetId() string {
	return p.id
}

func (p *EventsPipeline) AddReceiver(receiver EventsReceiver) {
	p.receivers = append(
		p.receivers,
		NewReceiverAdapter[simevents.Event](receiver.GetId(), receiver.PollEvents),
	)
}

func (p *EventsPipeline) AddProcessor(processor ProcessorFunc[simevents.Event]) {
	p.processorList.AddProcessor(processor)
}

func (p *EventsPipeline) AddExporter(exporter EventsExporter) {
	p.exporters = append(
		p.exporters,
		NewExporterAdapter(exporter.GetId(), exporter.ExportEvents),
	)
}

func (p *EventsPipeline) ExecuteSync(ctx context.Context) []error {
	return executeSync(ctx, (*pipeline[simevents.Event])(p))
}
