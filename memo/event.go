package memo

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// EventKind tells what happened to a key.
type EventKind int

const (
	// EventComputed is sent after a successful computation was recorded.
	EventComputed EventKind = iota + 1

	// EventFailed is sent after a computation returned an error.
	EventFailed
)

func (k EventKind) String() string {
	switch k {
	case EventComputed:
		return "computed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event reports one computation. The embedded TimeSpan covers the call of
// the wrapped function.
type Event[K comparable] struct {
	Key  K
	Kind EventKind
	Err  error
	timespan.TimeSpan
}

func newEvent[K comparable](key K, kind EventKind, err error, start, end time.Time) Event[K] {
	return Event[K]{
		Key:      key,
		Kind:     kind,
		Err:      err,
		TimeSpan: timespan.BetweenTimes(start, end),
	}
}

// emit never blocks; events are dropped while the buffer is full.
func (c *Cache[K, V]) emit(ev Event[K]) {
	if c.events == nil {
		return
	}
	select {
	case c.events <- ev:
	default:
	}
}
