package simevents

import "github.com/sourcegraph/conc/iter"

// Record is one raw telemetry record as read off the wire.
type Record struct {
	Name      string
	Timestamp float64
	Value     any
}

// Result pairs a decoded record with its position in the input batch.
type Result struct {
	Index int
	Event Event
	Err   error
}

// DecodeBatch decodes records concurrently on at most workers goroutines and
// returns one Result per record in input order. workers <= 0 uses GOMAXPROCS.
func (d *Dispatcher) DecodeBatch(records []Record, workers int) []Result {
	if workers < 0 {
		workers = 0
	}

	mapper := iter.Mapper[Record, Result]{
		MaxGoroutines: workers,
	}

	results := mapper.Map(records, func(rec *Record) Result {
		ev, err := d.Dispatch(rec.Name, rec.Timestamp, rec.Value)
		return Result{Event: ev, Err: err}
	})

	for i := range results {
		results[i].Index = i
	}

	return results
}
