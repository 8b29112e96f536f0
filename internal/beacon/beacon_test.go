package beacon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"codeberg.org/devfolio/server/devfolio/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	mu     sync.Mutex
	events []Event
	err    error
	block  chan struct{}
}

func (f *fakeSink) RecordEvent(ctx context.Context, contentType, slug string, kind analytics.EventKind) (*analytics.Record, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	f.events = append(f.events, Event{Type: contentType, Slug: slug, Kind: kind})
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	return &analytics.Record{Type: contentType, Slug: slug}, nil
}

func (f *fakeSink) recorded() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Event(nil), f.events...)
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, 8)
	d.Start()

	d.Dispatch(Event{Type: "blog", Slug: "my-post", Kind: analytics.EventView})
	d.Dispatch(Event{Type: "project", Slug: "proj-1", Kind: analytics.EventClick})

	d.Stop()

	events := sink.recorded()
	require.Len(t, events, 2)
	assert.Equal(t, "my-post", events[0].Slug)
	assert.Equal(t, analytics.EventClick, events[1].Kind)
}

func TestDispatcher_SinkFailuresAreSwallowed(t *testing.T) {
	sink := &fakeSink{err: errors.New("cms is down")}
	d := NewDispatcher(sink, 8)
	d.Start()

	// must not panic or surface anything
	d.Dispatch(Event{Type: "blog", Slug: "my-post", Kind: analytics.EventView})

	d.Stop()

	assert.Len(t, sink.recorded(), 1)
}

func TestDispatcher_DispatchNeverBlocks(t *testing.T) {
	release := make(chan struct{})
	sink := &fakeSink{block: release}

	d := NewDispatcher(sink, 1)
	d.Start()

	// saturate the worker and the queue, then keep dispatching
	start := time.Now()
	for i := 0; i < 50; i++ {
		d.Dispatch(Event{Type: "blog", Slug: "s", Kind: analytics.EventView})
	}

	assert.Less(t, time.Since(start), time.Second, "Dispatch must return immediately even when the queue is full")

	close(release)
	d.Stop()
}

func TestDispatcher_DispatchAfterStopStillRecords(t *testing.T) {
	sink := &fakeSink{}
	d := NewDispatcher(sink, 8)
	d.Start()
	d.Stop()

	d.Dispatch(Event{Type: "blog", Slug: "late", Kind: analytics.EventView})

	// the fallback goroutine has no join point after Stop; poll briefly
	deadline := time.After(2 * time.Second)
	for {
		if len(sink.recorded()) == 1 {
			break
		}

		select {
		case <-deadline:
			t.Fatal("late event was never recorded")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(&fakeSink{}, 8)
	d.Start()

	d.Stop()
	d.Stop()
}
