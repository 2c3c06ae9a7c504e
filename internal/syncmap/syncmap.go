// Package syncmap provides a typed wrapper around sync.Map, for the few
// call sites that need to collect results from concurrently-running
// goroutines without a type assertion at every access.
package syncmap

import "sync"

// Map is a generic, concurrency-safe key/value store. The zero value is
// ready to use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Swap stores v for k and returns the previously stored value, if any.
func (m *Map[K, V]) Swap(k K, v V) (previous V, ok bool) {
	prevAny, ok := m.m.Swap(k, v)
	if !ok {
		return *new(V), false
	}
	return prevAny.(V), true
}

// Range calls f for every key/value pair currently stored, stopping early
// if f returns false.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	m.m.Range(func(k, v any) bool { return f(k.(K), v.(V)) })
}
