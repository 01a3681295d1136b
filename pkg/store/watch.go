package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventKeyChanged indicates the value stored under Key changed.
	EventKeyChanged EventType = iota

	// EventInvalidated signals that the change could not be attributed to a
	// single key and callers should refresh everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when another process writes to the
// underlying storage. Same-process changes are delivered through
// Store.Subscribe instead; the two channels are deliberately distinct.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a subsequent
				// refresh picks up the changes and keeps filesystem storms
				// from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep clients
				// in sync even if we cannot classify the change precisely.
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(evt.Name)
				switch key {
				case KeyDays, KeyPool, KeyScroll:
					throttle.Enqueue(Event{Type: EventKeyChanged, Key: key}, send)
				default:
					throttle.Enqueue(Event{Type: EventInvalidated}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers redraw
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Key] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, keys := range pending {
		if len(keys) == 0 {
			send(Event{Type: eventType})
			continue
		}

		for key := range keys {
			send(Event{Type: eventType, Key: key})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
