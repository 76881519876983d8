package importer

import "sync"

// Status is the phase of an import run.
type Status int

const (
	StatusIdle Status = iota
	StatusFetching
	StatusMatching
	StatusCreating
	StatusCompleted
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusFetching:
		return "fetching"
	case StatusMatching:
		return "matching"
	case StatusCreating:
		return "creating"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return ""
	}
}

// Progress is a progress event emitted during an import run.
//
// Transient: events are delivered to subscribers and not stored.
type Progress struct {
	Status       Status
	Current      int
	Total        int
	CurrentTrack string
	Message      string
}

// Bus delivers progress events to subscribers.
//
// Publish is synchronous and preserves subscription order. The
// subscriber list is snapshotted per publish, so a subscriber added
// during a publish is not invoked for that same event and unsubscribing
// mid-publish is safe.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Progress)
}

// NewBus creates an empty progress bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a callback and returns its unsubscribe function.
func (b *Bus) Subscribe(fn func(Progress)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every current subscriber with the event, in
// subscription order. A panicking subscriber does not prevent delivery
// to the rest.
func (b *Bus) Publish(p Progress) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		func() {
			defer func() {
				_ = recover()
			}()
			sub.fn(p)
		}()
	}
}

// Len reports the current number of subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
