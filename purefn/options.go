package purefn

import "go.uber.org/zap"

// Option configures a Store at construction.
type Option[V any] func(*Store[V])

// WithLogger makes the store emit debug logs for hits, misses and evictions.
func WithLogger[V any](logger *zap.Logger) Option[V] {
	return func(s *Store[V]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOnEvict registers a callback invoked after an entry has been evicted.
// The store is already consistent when the callback runs.
func WithOnEvict[V any](onEvict func(Key, V)) Option[V] {
	return func(s *Store[V]) {
		s.onEvict = onEvict
	}
}

// WithName labels the store in log output.
func WithName[V any](name string) Option[V] {
	return func(s *Store[V]) {
		s.name = name
	}
}
