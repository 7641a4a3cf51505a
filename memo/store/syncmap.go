package store

import (
	"sync"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

// slot boxes values so a stored nil interface still reads back as a hit.
type slot[V any] struct {
	value V
}

type syncMapStore[K comparable, V any] struct {
	m *sync.Map
}

// NewSyncMap returns the default in-memory backend. It never fails.
func NewSyncMap[K comparable, V any]() Store[K, V] {
	return syncMapStore[K, V]{m: &sync.Map{}}
}

func (s syncMapStore[K, V]) Load(key K) (value V, ok bool, err error) {
	sl, ok := helper.GetTypedValueOf2[slot[V]](func() (any, bool) {
		return s.m.Load(key)
	})
	return sl.value, ok, nil
}

func (s syncMapStore[K, V]) Store(key K, value V) error {
	s.m.LoadOrStore(key, slot[V]{value: value})
	return nil
}
