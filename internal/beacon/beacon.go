package beacon

import (
	"context"
	"sync"
	"time"

	"codeberg.org/devfolio/server/devfolio/analytics"
	"codeberg.org/devfolio/server/internal/logger"
	"codeberg.org/devfolio/server/internal/metrics"
)

const (
	defaultQueueSize = 256

	// budget for recording one event at the store
	recordTimeout = 10 * time.Second

	// how long Stop waits for in-flight events before giving up
	drainTimeout = 10 * time.Second
)

// consumes tracked events; satisfied by the analytics counter service
type Sink interface {
	RecordEvent(ctx context.Context, contentType, slug string, kind analytics.EventKind) (*analytics.Record, error)
}

// one tracked event in flight
type Event struct {
	Type string
	Slug string
	Kind analytics.EventKind
}

// best-effort delivery of tracked events to the counter service. Dispatch
// never blocks the caller: events go through a buffered queue drained by a
// worker, and queue overflow falls back to a one-off goroutine. Failures are
// discarded, never retried, never surfaced.
type Dispatcher struct {
	sink   Sink
	events chan Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Dispatcher{
		sink:   sink,
		events: make(chan Event, queueSize),
	}
}

// starts the queue worker
func (d *Dispatcher) Start() {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		for ev := range d.events {
			d.record(ev)
		}
	}()
}

// hands an event to the dispatcher without blocking. The queue is the
// primary tier; when it is full or already closed, the event is recorded on
// a one-off goroutine so the caller still returns immediately.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.closed {
		select {
		case d.events <- ev:
			return
		default:
		}
	}

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.record(ev)
	}()
}

// closes the queue and waits for in-flight events, bounded by drainTimeout
func (d *Dispatcher) Stop() {
	d.mu.Lock()

	if d.closed {
		d.mu.Unlock()
		return
	}

	d.closed = true
	close(d.events)
	d.mu.Unlock()

	done := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(drainTimeout):
		logger.Warn("beacon dispatcher stopped before draining fully")
	}
}

// records one event with a detached timeout context; errors are logged at
// warn and dropped - delivery must never fail the user-visible action
func (d *Dispatcher) record(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if _, err := d.sink.RecordEvent(ctx, ev.Type, ev.Slug, ev.Kind); err != nil {
		metrics.BeaconDropped.Inc()
		logger.Warn("dropping analytics event",
			"type", ev.Type,
			"slug", ev.Slug,
			"event", string(ev.Kind),
			"error", err,
		)
	}
}
