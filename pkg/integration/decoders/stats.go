package decoders

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/log"
	"github.com/newrelic/newrelic-labs-simevents/pkg/integration/model"
	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents"
	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_MAX_FAILURE_LOGS = 100

	MetricDecoded      = "simevents.decoded"
	MetricFailed       = "simevents.failed"
	MetricUnrecognized = "simevents.unrecognized"
	MetricMalformed    = "simevents.malformed"
)

type failure struct {
	eventName string
	err       error
	at        time.Time
}

// Stats counts decode outcomes between harvests. It is both a metrics receiver
// (delta counts by event name) and a logs receiver (one log per failure, up to
// a bound per harvest).
type Stats struct {
	id             string
	maxFailureLogs int
	now            func() time.Time

	mu           sync.Mutex
	decoded      map[string]int64
	failed       map[string]int64
	unrecognized map[string]int64
	malformed    int64
	failures     []failure
	dropped      int64
	lastHarvest  time.Time
}

func NewStats(id string, maxFailureLogs int) *Stats {
	if maxFailureLogs <= 0 {
		maxFailureLogs = DEFAULT_MAX_FAILURE_LOGS
	}

	s := &Stats{
		id:             id,
		maxFailureLogs: maxFailureLogs,
		now:            time.Now,
	}

	s.reset()
	s.lastHarvest = s.now()

	return s
}

func (s *Stats) GetId() string {
	return s.id
}

func (s *Stats) reset() {
	s.decoded = map[string]int64{}
	s.failed = map[string]int64{}
	s.unrecognized = map[string]int64{}
	s.malformed = 0
}

func (s *Stats) recordDecoded(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decoded[name] += 1
}

func (s *Stats) recordUnrecognized(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unrecognized[name] += 1
}

func (s *Stats) recordMalformed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.malformed += 1
	s.addFailure(failure{err: err, at: s.now()})
}

func (s *Stats) recordFailure(name string, err error) {
	fields := logrus.Fields{"eventName": name}
	if de, ok := simevents.AsDecodeError(err); ok {
		fields["field"] = de.Field
		fields["group"] = de.Group
	}
	log.WithFields(fields).Warnf("decode failed: %v", err)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.failed[name] += 1
	s.addFailure(failure{eventName: name, err: err, at: s.now()})
}

func (s *Stats) addFailure(f failure) {
	if len(s.failures) >= s.maxFailureLogs {
		s.dropped += 1
		return
	}

	s.failures = append(s.failures, f)
}

func countMetrics(
	name string,
	counts map[string]int64,
	harvestId string,
	interval time.Duration,
	now time.Time,
) []model.Metric {
	names := make([]string, 0, len(counts))
	for eventName := range counts {
		names = append(names, eventName)
	}
	slices.Sort(names)

	metrics := make([]model.Metric, 0, len(names))
	for _, eventName := range names {
		m := model.NewCountMetric(
			name,
			model.MakeNumeric(counts[eventName]),
			interval,
			now,
		)
		m.Attributes["eventName"] = eventName
		m.Attributes["harvestId"] = harvestId

		metrics = append(metrics, m)
	}

	return metrics
}

// PollMetrics emits the counts gathered since the previous poll and starts a
// new interval.
func (s *Stats) PollMetrics(ctx context.Context, out chan<- model.Metric) error {
	s.mu.Lock()

	now := s.now()
	interval := now.Sub(s.lastHarvest)
	harvestId := uuid.NewString()

	metrics := []model.Metric{}
	metrics = append(metrics, countMetrics(MetricDecoded, s.decoded, harvestId, interval, now)...)
	metrics = append(metrics, countMetrics(MetricFailed, s.failed, harvestId, interval, now)...)
	metrics = append(metrics, countMetrics(MetricUnrecognized, s.unrecognized, harvestId, interval, now)...)

	if s.malformed > 0 {
		m := model.NewCountMetric(MetricMalformed, model.MakeNumeric(s.malformed), interval, now)
		m.Attributes["harvestId"] = harvestId
		metrics = append(metrics, m)
	}

	s.reset()
	s.lastHarvest = now

	s.mu.Unlock()

	for _, m := range metrics {
		select {
		case out <- m:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func failureLog(f failure) model.Log {
	attrs := map[string]any{
		"reason": "read",
	}

	if f.eventName != "" {
		attrs["eventName"] = f.eventName
	}

	de, ok := simevents.AsDecodeError(f.err)
	if ok {
		attrs["reason"] = de.Reason.Error()

		if de.Field != "" {
			attrs["field"] = de.Field
		}

		if de.Group != "" {
			attrs["group"] = de.Group
		}
	} else if errors.Is(f.err, ErrMalformedRecord) {
		attrs["reason"] = ErrMalformedRecord.Error()
	}

	return model.NewLog(f.err.Error(), attrs, f.at)
}

// PollLogs emits one log per failure since the previous poll. Failures past
// the bound are summarized in a single log.
func (s *Stats) PollLogs(ctx context.Context, out chan<- model.Log) error {
	s.mu.Lock()

	failures := s.failures
	dropped := s.dropped
	now := s.now()

	s.failures = nil
	s.dropped = 0

	s.mu.Unlock()

	logs := make([]model.Log, 0, len(failures)+1)
	for _, f := range failures {
		logs = append(logs, failureLog(f))
	}

	if dropped > 0 {
		logs = append(logs, model.NewLog(
			fmt.Sprintf("%d more decode failures were not logged", dropped),
			map[string]any{"dropped": dropped},
			now,
		))
	}

	for _, l := range logs {
		select {
		case out <- l:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
