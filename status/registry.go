// Package status holds lock-free session counters shared between the loop and the frontends
package status

import "sync/atomic"

// Registry is the central metrics facade
// Owners cache pointers once; hot paths write directly to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int returns the current value of an integer metric, zero if never registered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// String returns the current value of a string metric, empty if never registered
func (r *Registry) String(key string) string {
	if !r.Strings.Has(key) {
		return ""
	}
	return r.Strings.Get(key).Load()
}

// Snapshot copies all integer metrics into a plain map
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// TotalCount returns the number of registered metrics of all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}
