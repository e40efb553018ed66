package listview

import (
	"context"
	"sync"
)

// Guard tracks the latest fetch per key (typically session id plus screen).
// Starting a new fetch cancels the previous one for the same key, and a
// superseded fetch learns so through Current before it renders.
type Guard struct {
	mu      sync.Mutex
	next    uint64
	entries map[string]guardEntry
}

type guardEntry struct {
	gen    uint64
	cancel context.CancelFunc
}

// Ticket identifies one fetch.
type Ticket struct {
	key string
	gen uint64
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{entries: make(map[string]guardEntry)}
}

// Begin registers a fetch for key and returns a context that is cancelled
// when a newer fetch for the same key begins.
func (g *Guard) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	child, cancel := context.WithCancel(ctx)

	g.mu.Lock()
	g.next++
	gen := g.next
	if prev, ok := g.entries[key]; ok {
		prev.cancel()
	}
	g.entries[key] = guardEntry{gen: gen, cancel: cancel}
	g.mu.Unlock()

	return child, Ticket{key: key, gen: gen}
}

// Current reports whether t is still the latest fetch for its key.
func (g *Guard) Current(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[t.key]
	return ok && e.gen == t.gen
}

// End releases t. The entry is removed only if t is still the latest.
func (g *Guard) End(t Ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[t.key]
	if !ok || e.gen != t.gen {
		return
	}
	e.cancel()
	delete(g.entries, t.key)
}

// Len returns the number of in-flight keys.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}
