package eventbus

import (
	"context"
	"sync"
)

// Topics published by the decoy.
const (
	TopicSession  = "decoy.session"
	TopicActivity = "decoy.activity"
)

// Event is one decoy observation fanned out to subscribers.
type Event struct {
	Type    string
	Source  string
	Payload any
}

// Subscriber receives events for the topics it declares.
type Subscriber interface {
	Handle(ctx context.Context, evt Event)
	Topics() []string
}

// Bus is an in-memory pub/sub bus. Publishing enqueues; a single dispatch
// goroutine hands events to subscribers so connection handlers are never
// blocked by a slow consumer.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Subscriber

	queue chan Event
	stop  chan struct{}
	done  chan struct{}
}

func NewBus(buffer int) *Bus {
	b := &Bus{
		subs:  make(map[string][]Subscriber),
		queue: make(chan Event, buffer),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go b.loop()
	return b
}

func (b *Bus) loop() {
	defer close(b.done)
	for {
		select {
		case evt := <-b.queue:
			b.dispatch(evt)
		case <-b.stop:
			return
		}
	}
}

// Close stops dispatching. Events still queued are dropped; the decoy's
// durable record is the activity log, not the bus.
func (b *Bus) Close() {
	close(b.stop)
	<-b.done
}

// Register adds a subscriber for all of its topics.
func (b *Bus) Register(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, t := range sub.Topics() {
		b.subs[t] = append(b.subs[t], sub)
	}
}

// Publish enqueues an event, giving up if ctx is cancelled first.
func (b *Bus) Publish(ctx context.Context, evt Event) error {
	select {
	case b.queue <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPublish enqueues without blocking; reports whether the event was taken.
// Used on the hot connection path where dropping an event is preferable to
// stalling a handler behind a full queue.
func (b *Bus) TryPublish(evt Event) bool {
	select {
	case b.queue <- evt:
		return true
	default:
		return false
	}
}

func (b *Bus) dispatch(evt Event) {
	b.mu.RLock()
	subs := append([]Subscriber(nil), b.subs[evt.Type]...)
	b.mu.RUnlock()
	for _, s := range subs {
		s.Handle(context.Background(), evt)
	}
}
