package purefn

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxLoggedKey bounds the rendered key in log lines.
const maxLoggedKey = 96

// Compute is the function a Store memoizes. It receives the arguments of the
// call exactly as they were passed to GetOrCompute.
type Compute[V any] func(args ...any) (V, error)

type entry[V any] struct {
	key   Key
	value V

	prev, next *entry[V]
}

// Store is a bounded memoizing cache with least-recently-used eviction.
//
// Results are keyed by the normalized call arguments. A cached value is never
// replaced: it is only recomputed after it has been evicted.
//
// This type is not safe for concurrent use.
type Store[V any] struct {
	id       string
	name     string
	capacity int
	compute  Compute[V]

	items map[Key]*entry[V]
	order *recency[V]
	stats Stats

	logger  *zap.Logger
	onEvict func(Key, V)
}

// New creates an empty store holding at most capacity results of compute.
func New[V any](capacity int, compute Compute[V], opts ...Option[V]) (*Store[V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if compute == nil {
		return nil, ErrNilCompute
	}
	s := &Store[V]{
		id:       uuid.New().String(),
		capacity: capacity,
		compute:  compute,
		items:    make(map[Key]*entry[V]),
		order:    newRecency[V](),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetOrCompute returns the cached result for args, computing and storing it on
// a miss. Errors from compute are returned as is and nothing is stored for
// them. If args cannot form a key the error wraps ErrUnhashable and the store
// is left untouched.
func (s *Store[V]) GetOrCompute(args ...any) (V, error) {
	key, err := Normalize(args...)
	if err != nil {
		s.stats.Rejections++
		if ce := s.logger.Check(zapcore.DebugLevel, "unhashable argument"); ce != nil {
			ce.Write(zap.Error(err), zap.String("store_id", s.id), zap.String("store", s.name))
		}
		var zero V
		return zero, err
	}

	if e, ok := s.items[key]; ok {
		s.order.moveToBack(e)
		s.stats.Hits++
		s.debug("cache hit", key)
		return e.value, nil
	}

	s.stats.Misses++
	s.debug("cache miss", key)
	value, err := s.compute(args...)
	if err != nil {
		s.stats.Failures++
		s.debug("compute failed", key, zap.Error(err))
		var zero V
		return zero, err
	}

	// a recursive call made by compute may already have stored this key
	if e, ok := s.items[key]; ok {
		s.order.moveToBack(e)
		return e.value, nil
	}

	e := &entry[V]{key: key, value: value}
	s.items[key] = e
	s.order.pushBack(e)
	if s.order.len > s.capacity {
		s.evictOldest()
	}
	return value, nil
}

func (s *Store[V]) evictOldest() {
	oldest := s.order.front()
	s.order.remove(oldest)
	delete(s.items, oldest.key)
	s.stats.Evictions++
	s.debug("cache evict", oldest.key)
	if s.onEvict != nil {
		s.onEvict(oldest.key, oldest.value)
	}
}

// Peek returns the cached result for args without computing it and without
// updating its recency.
func (s *Store[V]) Peek(args ...any) (V, bool, error) {
	var zero V
	key, err := Normalize(args...)
	if err != nil {
		return zero, false, err
	}
	if e, ok := s.items[key]; ok {
		return e.value, true, nil
	}
	return zero, false, nil
}

// Contains reports whether a result for args is cached, without updating its recency.
func (s *Store[V]) Contains(args ...any) (bool, error) {
	_, ok, err := s.Peek(args...)
	return ok, err
}

// Keys returns the cached keys from least to most recently used.
func (s *Store[V]) Keys() []Key {
	keys := make([]Key, 0, s.order.len)
	s.order.each(func(e *entry[V]) {
		keys = append(keys, e.key)
	})
	return keys
}

// Len returns the number of cached results.
func (s *Store[V]) Len() int {
	return s.order.len
}

// Cap returns the capacity fixed at construction.
func (s *Store[V]) Cap() int {
	return s.capacity
}

// ID returns the identifier attached to the store's log lines.
func (s *Store[V]) ID() string {
	return s.id
}

// Stats returns a snapshot of the store counters.
func (s *Store[V]) Stats() Stats {
	return s.stats
}

func (s *Store[V]) debug(msg string, key Key, fields ...zap.Field) {
	ce := s.logger.Check(zapcore.DebugLevel, msg)
	if ce == nil {
		return
	}
	ce.Write(append(fields,
		zap.String("store_id", s.id),
		zap.String("store", s.name),
		zap.String("key", key.Short(maxLoggedKey)),
		zap.Uint64("key_hash", key.Hash()),
		zap.Int("len", s.order.len),
	)...)
}
