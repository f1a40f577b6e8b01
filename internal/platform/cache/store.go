package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
)

// Store is a bounded LRU keyed by string. Concurrent loads of the same
// missing key share one loader call. A nil *Store caches nothing.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
	max     int
	flight  singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry[V any] struct {
	key   string
	value V
}

// Stats is a point-in-time view of the store.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewStore returns a store holding at most maxEntries values, or nil when
// maxEntries is not positive.
func NewStore[V any](maxEntries int) *Store[V] {
	if maxEntries <= 0 {
		return nil
	}
	return &Store[V]{
		entries: make(map[string]*list.Element, maxEntries),
		order:   list.New(),
		max:     maxEntries,
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if s == nil || key == "" {
		return zero, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.entries[key]
	if !ok {
		s.misses.Add(1)
		return zero, false
	}
	s.order.MoveToFront(el)
	s.hits.Add(1)
	return el.Value.(*entry[V]).value, true
}

func (s *Store[V]) Set(_ context.Context, key string, value V) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[key]; ok {
		el.Value.(*entry[V]).value = value
		s.order.MoveToFront(el)
		return
	}

	s.entries[key] = s.order.PushFront(&entry[V]{key: key, value: value})
	for s.order.Len() > s.max {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry[V]).key)
	}
}

func (s *Store[V]) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

func (s *Store[V]) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	return Stats{Entries: s.Len(), Hits: s.hits.Load(), Misses: s.misses.Load()}
}

// GetOrLoad returns the cached value for key or stores what loader returns.
// Errors are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, crerr.New("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(V), nil
}
