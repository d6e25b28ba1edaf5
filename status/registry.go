// Package status publishes live race telemetry for readers on other goroutines
// Writers cache metric pointers once and then update atomics without locking
package status

import (
	"slices"
	"strconv"
	"sync/atomic"

	"github.com/sasha-s/go-deadlock"
)

// Board is a keyed set of metrics of type T
// Creation takes the lock; access through a cached pointer does not
type Board[T any] struct {
	mu    deadlock.RWMutex
	items map[string]*T
}

func NewBoard[T any]() *Board[T] {
	return &Board[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (b *Board[T]) Get(key string) *T {
	b.mu.RLock()
	if p, ok := b.items[key]; ok {
		b.mu.RUnlock()
		return p
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.items[key]; ok {
		return p
	}
	p := new(T)
	b.items[key] = p
	return p
}

func (b *Board[T]) Has(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.items[key]
	return ok
}

// Range visits metrics in key order
func (b *Board[T]) Range(fn func(key string, p *T)) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.items))
	for k := range b.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fn(k, b.items[k])
	}
}

func (b *Board[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// Registry groups boards by value type
type Registry struct {
	Flags    *Board[atomic.Bool]
	Counters *Board[atomic.Int64]
	Gauges   *Board[Gauge]
	Labels   *Board[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Flags:    NewBoard[atomic.Bool](),
		Counters: NewBoard[atomic.Int64](),
		Gauges:   NewBoard[Gauge](),
		Labels:   NewBoard[Label](),
	}
}

// Count returns the number of metrics across all boards
func (r *Registry) Count() int {
	return r.Flags.Count() + r.Counters.Count() + r.Gauges.Count() + r.Labels.Count()
}

// Lines renders every metric as "key value", grouped by board then sorted by key
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.Count())
	r.Counters.Range(func(k string, p *atomic.Int64) {
		out = append(out, k+" "+strconv.FormatInt(p.Load(), 10))
	})
	r.Gauges.Range(func(k string, p *Gauge) {
		out = append(out, k+" "+strconv.FormatFloat(p.Get(), 'f', 2, 64))
	})
	r.Flags.Range(func(k string, p *atomic.Bool) {
		out = append(out, k+" "+strconv.FormatBool(p.Load()))
	})
	r.Labels.Range(func(k string, p *Label) {
		out = append(out, k+" "+p.Load())
	})
	return out
}
