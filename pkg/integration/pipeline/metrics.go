package pipeline

import (
	"context"
	"io"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
)

type MetricsReceiver interface {
	Component
	PollMetrics(ctx context.Context, writer chan<- model.Metric) error
}

type MetricsDecoderFunc func(
	receiver MetricsReceiver,
	in io.ReadCloser,
	out chan<- model.Metric,
) error

type MetricsExporter interface {
	Component
	ExportMetrics(ctx context.Context, metrics []model.Metric) error
}

type MetricsPipeline pipeline[model.Metric]

func NewMetricsPipeline(id string) *MetricsPipeline {
	p := MetricsPipeline(newPipeline[model.Metric](id))
	return &p
}

func (p *MetricsPipeline) GetId() string {
	return p.id
}

func (p *MetricsPipeline) AddReceiver(receiver MetricsReceiver) {
	p.receivers = append(
		p.receivers,
		NewReceiverAdapter[model.Metric](receiver.GetId(), receiver.PollMetrics),
	)
}

func (p *MetricsPipeline) AddProcessor(processor ProcessorFunc[model.Metric]) {
	p.processorList.AddProcessor(processor)
}

func (p *MetricsPipeline) AddExporter(exporter MetricsExporter) {
	p.exporters = append(
		p.exporters,
		NewExporterAdapter(exporter.GetId(), exporter.ExportMetrics),
	)
}

func (p *MetricsPipeline) ExecuteSync(ctx context.Context) []error {
	return executeSync(ctx, (*pipeline[model.Metric])(p))
}
