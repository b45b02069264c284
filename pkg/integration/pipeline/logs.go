package pipeline

import (
	"context"
	"io"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
)

type LogsReceiver interface {
	Component
	PollLogs(ctx context.Context, writer chan<- model.Log) error
}

type LogsDecoderFunc func(
	receiver LogsReceiver,
	in io.ReadCloser,
	out chan<- model.Log,
) error

type LogsExporter interface {
	Component
	ExportLogs(ctx context.Context, logs []model.Log) error
}

type LogsPipeline pipeline[model.Log]

func NewLogsPipeline(id string) *LogsPipeline {
	p := LogsPipeline(newPipeline[model.Log](id))
	return &p
}

func (p *LogsPipeline) GetId() string {
	return p.id
}

func (p *LogsPipeline) AddReceiver(receiver LogsReceiver) {
	p.receivers = append(
		p.receivers,
		NewReceiverAdapter[model.Log](receiver.GetId(), receiver.PollLogs),
	)
}

func (p *LogsPipeline) AddProcessor(processor ProcessorFunc[model.Log]) {
	p.processorList.AddProcessor(processor)
}

func (p *LogsPipeline) AddExporter(exporter LogsExporter) {
	p.exporters = append(
		p.exporters,
		NewExporterAdapter(exporter.GetId(), exporter.ExportLogs),
	)
}

func (p *LogsPipeline) ExecuteSync(ctx context.Context) []error {
	return executeSync(ctx, (*pipeline[model.Log])(p))
}
