package memo

import "errors"

// errGoexit is handed to waiters when the wrapped function called
// runtime.Goexit instead of returning.
var errGoexit = errors.New("memo: computation exited without returning")

// flight is one in-progress computation of a key. The leader settles it
// exactly once; waiters block on done.
type flight[V any] struct {
	done chan struct{}

	value V
	err   error

	panicked  bool
	recovered any
}

func newFlight[V any]() *flight[V] {
	return &flight[V]{done: make(chan struct{})}
}

func (f *flight[V]) settle(value V, err error) {
	f.value, f.err = value, err
	close(f.done)
}

func (f *flight[V]) settlePanic(r any) {
	f.panicked, f.recovered = true, r
	close(f.done)
}

// wait blocks until the leader settles the flight and replays its outcome,
// including a panic.
func (f *flight[V]) wait() (V, error) {
	<-f.done
	if f.panicked {
		panic(f.recovered)
	}
	return f.value, f.err
}
