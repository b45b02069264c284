package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/spf13/viper"
)

const (
	DEFAULT_HARVEST_TIME       = 60
	DEFAULT_ITEMS_PER_BATCH    = 500
	DEFAULT_MAX_EXPORT_WORKERS = 2
)

type Component interface {
	GetId() string
}

// Pipeline is one harvest cycle: poll every receiver, batch what they emit,
// run the batches through the processors and hand them to every exporter.
type Pipeline interface {
	Component
	ExecuteSync(ctx context.Context) []error
}

type pipeline[T interface{}] struct {
	id            string
	receivers     []Receiver[T]
	processorList *ProcessorList[T]
	exporters     []Exporter[T]
}

func newPipeline[T interface{}](id string) pipeline[T] {
	return pipeline[T]{
		id:            id,
		receivers:     []Receiver[T]{},
		processorList: &ProcessorList[T]{},
		exporters:     []Exporter[T]{},
	}
}

// errorList collects worker errors from several goroutines.
type errorList struct {
	mu   sync.Mutex
	errs []error
}

func (l *errorList) add(err error) {
	if err == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.errs = append(l.errs, err)
}

func (l *errorList) list() []error {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]error, len(l.errs))
	copy(out, l.errs)

	return out
}

func settings() (itemsPerBatch int, harvestTime time.Duration, exportWorkers int) {
	itemsPerBatch = viper.GetInt("pipeline.itemsPerBatch")
	if itemsPerBatch <= 0 {
		itemsPerBatch = DEFAULT_ITEMS_PER_BATCH
	}

	harvestSeconds := viper.GetInt("pipeline.harvestTime")
	if harvestSeconds <= 0 {
		harvestSeconds = DEFAULT_HARVEST_TIME
	}

	exportWorkers = viper.GetInt("pipeline.exportWorkers")
	if exportWorkers <= 0 {
		exportWorkers = DEFAULT_MAX_EXPORT_WORKERS
	}

	return itemsPerBatch, time.Duration(harvestSeconds) * time.Second, exportWorkers
}

func executeSync[T interface{}](ctx context.Context, p *pipeline[T]) []error {
	var wg sync.WaitGroup

	log.Debugf("executing synchronous pipeline %s", p.id)
	defer log.Debugf("synchronous pipeline %s execution complete", p.id)

	itemsPerBatch, harvestTime, exportWorkers := settings()

	errs := &errorList{}
	dataChan := make(chan T)
	exportChan := make(chan []T)

	wg.Add(1)
	log.Debugf("starting processor worker")
	go processorWorker[T](
		&wg,
		p.processorList,
		itemsPerBatch,
		harvestTime,
		dataChan,
		exportChan,
		errs,
	)

	log.Debugf("starting %d export workers", exportWorkers)
	for i := 0; i < exportWorkers; i += 1 {
		wg.Add(1)
		go exporterWorker[T](ctx, &wg, p.exporters, exportChan, errs)
	}

	for i := 0; i < len(p.receivers); i += 1 {
		log.Debugf("running receiver %s", p.receivers[i].GetId())

		err := p.receivers[i].Poll(ctx, dataChan)
		if err != nil {
			log.Errorf("poll failed for receiver %s: %v", p.receivers[i].GetId(), err)
			errs.add(err)
		}
	}

	close(dataChan)
	wg.Wait()

	result := errs.list()
	if len(result) > 0 {
		log.Debugf("completed with errors: %v", errors.Join(result...))
	}

	return result
}

func flush[T any](
	processorList *ProcessorList[T],
	data []T,
	exportChan chan<- []T,
) error {
	if len(data) == 0 {
		return nil
	}

	log.Debugf("processor flushing %d items", len(data))

	processed, err := processorList.Process(data)
	if err != nil {
		return err
	}

	if len(processed) > 0 {
		exportChan <- processed
	}

	return nil
}

// processorWorker owns exportChan and closes it once dataChan is drained.
func processorWorker[T any](
	wg *sync.WaitGroup,
	processorList *ProcessorList[T],
	itemsPerBatch int,
	harvestTime time.Duration,
	dataChan <-chan T,
	exportChan chan<- []T,
	errs *errorList,
) {
	defer wg.Done()
	defer close(exportChan)

	log.Debugf("using %d items per batch and %s harvest time", itemsPerBatch, harvestTime)

	data := make([]T, 0, itemsPerBatch)

	ticker := time.NewTicker(harvestTime)
	defer ticker.Stop()

	for {
		select {
		case datum, ok := <-dataChan:
			if !ok {
				log.Debugf("data channel closed")

				if err := flush(processorList, data, exportChan); err != nil {
					log.Errorf("flush failed: %v", err)
					errs.add(err)
				}
				return
			}

			data = append(data, datum)

			if len(data) >= itemsPerBatch {
				if err := flush(processorList, data, exportChan); err != nil {
					log.Errorf("flush failed: %v", err)
					errs.add(err)
				}
				data = make([]T, 0, itemsPerBatch)
			}

		case <-ticker.C:
			log.Debugf("harvest timer ticked; flushing items")

			if err := flush(processorList, data, exportChan); err != nil {
				log.Errorf("flush failed: %v", err)
				errs.add(err)
			}
			data = make([]T, 0, itemsPerBatch)
		}
	}
}

func exporterWorker[T any](
	ctx context.Context,
	wg *sync.WaitGroup,
	exporters []Exporter[T],
	exportChan <-chan []T,
	errs *errorList,
) {
	defer wg.Done()

	for data := range exportChan {
		for i := 0; i < len(exporters); i += 1 {
			log.Debugf("running export for exporter %s", exporters[i].GetId())

			err := exporters[i].Export(ctx, data)
			if err != nil {
				log.Errorf("exporter %s failed: %v", exporters[i].GetId(), err)
				errs.add(err)
			}
		}
	}

	log.Debugf("exporter channel closed")
}
