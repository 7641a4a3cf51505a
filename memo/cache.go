package memo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ive_go/memo/store"
)

// Cache is a lazily filled table of the results of one function.
//
// A Cache is safe for concurrent use, and concurrent Gets for the same
// unresolved key share one call of the function. Errors of the function are
// returned unchanged and never recorded. The function must not Get its own
// key from the same Cache, since it would wait on itself.
type Cache[K comparable, V any] struct {
	id        string
	name      string
	transform func(K) (V, error)
	store     store.Store[K, V]
	inflight  sync.Map // K -> *flight[V]

	logger  *zap.Logger
	metrics *metrics
	events  chan Event[K]
}

// New returns a Cache over transform backed by an in-memory table.
// transform is not called until the first Get.
func New[K comparable, V any](transform func(K) (V, error), opts ...Option) *Cache[K, V] {
	return NewWithStore(transform, store.NewSyncMap[K, V](), opts...)
}

// NewWithStore is New with a caller supplied backend. The backend should be
// empty and must not be written to by anything but this Cache.
func NewWithStore[K comparable, V any](
	transform func(K) (V, error),
	backend store.Store[K, V],
	opts ...Option,
) *Cache[K, V] {
	if transform == nil {
		panic("memo: nil transform")
	}
	return newCache(transform, backend, opts)
}

func newCache[K comparable, V any](
	transform func(K) (V, error),
	backend store.Store[K, V],
	opts []Option,
) *Cache[K, V] {
	if backend == nil {
		panic("memo: nil store")
	}
	o := newOptions(opts)
	id := uuid.New().String()
	logger := o.logger.With(zap.String("cache", o.name), zap.String("cache_id", id))

	m, err := newMetrics(o.meter, o.name)
	if err != nil {
		logger.Warn("failed to create instruments, metrics disabled", zap.Error(err))
		m = noopMetrics(o.name)
	}

	c := &Cache[K, V]{
		id:        id,
		name:      o.name,
		transform: transform,
		store:     backend,
		logger:    logger,
		metrics:   m,
	}
	if o.eventBuffer > 0 {
		c.events = make(chan Event[K], o.eventBuffer)
	}
	logger.Debug("created cache")
	return c
}

// ID returns the unique id of this cache instance.
func (c *Cache[K, V]) ID() string { return c.id }

// Name returns the name given with WithName.
func (c *Cache[K, V]) Name() string { return c.name }

// Events returns the computation events channel, or nil if the cache was
// built without WithEvents. The channel is never closed.
func (c *Cache[K, V]) Events() <-chan Event[K] { return c.events }

// Get returns the value for key, computing and recording it on first use.
//
// An error from the wrapped function is returned as is, and the next Get for
// key calls the function again. An error from a custom backend's Load is
// returned wrapped.
func (c *Cache[K, V]) Get(key K) (V, error) {
	return c.get(key, c.transform)
}

// Contains reports whether key has already been resolved. It never computes.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok, err := c.store.Load(key)
	return ok && err == nil
}

func (c *Cache[K, V]) get(key K, fn func(K) (V, error)) (V, error) {
	ctx := context.Background()

	if v, ok, err := c.load(key); err != nil {
		c.metrics.lookup(ctx, resultError)
		return v, err
	} else if ok {
		c.metrics.lookup(ctx, resultHit)
		return v, nil
	}

	f := newFlight[V]()
	if actual, loaded := c.inflight.LoadOrStore(key, f); loaded {
		c.metrics.lookup(ctx, resultShared)
		return actual.(*flight[V]).wait()
	}

	// A previous leader may have committed between the first load and
	// LoadOrStore.
	if v, ok, err := c.load(key); err != nil || ok {
		c.inflight.CompareAndDelete(key, f)
		f.settle(v, err)
		if err != nil {
			c.metrics.lookup(ctx, resultError)
		} else {
			c.metrics.lookup(ctx, resultHit)
		}
		return v, err
	}

	c.metrics.lookup(ctx, resultMiss)
	return c.compute(ctx, key, f, fn)
}

func (c *Cache[K, V]) load(key K) (V, bool, error) {
	v, ok, err := c.store.Load(key)
	if err != nil {
		c.logger.Error("failed to load from store", zap.Any("key", key), zap.Error(err))
		return v, false, fmt.Errorf("memo: load %v: %w", key, err)
	}
	return v, ok, nil
}

// compute runs fn as the leader of f. The value is stored before the flight
// is retired so a late caller either joins f or finds the value. Until f is
// settled, a panic or Goexit anywhere in here, the backend included, retires
// the flight and leaves key unresolved.
func (c *Cache[K, V]) compute(ctx context.Context, key K, f *flight[V], fn func(K) (V, error)) (V, error) {
	start := time.Now()
	settled := false
	defer func() {
		if settled {
			return
		}
		r := recover()
		c.inflight.CompareAndDelete(key, f)
		if r == nil {
			var zero V
			f.settle(zero, errGoexit)
			return
		}
		c.logger.Error("computation panicked", zap.Any("key", key), zap.Any("panic", r))
		f.settlePanic(r)
		panic(r)
	}()

	c.logger.Debug("computing", zap.Any("key", key))
	v, err := fn(key)
	end := time.Now()
	c.metrics.computed(ctx, end.Sub(start), err)

	if err != nil {
		c.inflight.CompareAndDelete(key, f)
		f.settle(v, err)
		settled = true
		c.logger.Debug("computation failed", zap.Any("key", key), zap.Error(err))
		c.emit(newEvent(key, EventFailed, err, start, end))
		return v, err
	}

	if serr := c.store.Store(key, v); serr != nil {
		c.metrics.storeFailed(ctx)
		c.logger.Error("failed to record value, key stays unresolved",
			zap.Any("key", key),
			zap.Error(serr),
		)
	}
	c.inflight.CompareAndDelete(key, f)
	f.settle(v, nil)
	settled = true
	c.logger.Debug("computed", zap.Any("key", key), zap.Duration("took", end.Sub(start)))
	c.emit(newEvent(key, EventComputed, nil, start, end))
	return v, nil
}
