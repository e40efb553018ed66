package listview

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_NewerFetchSupersedesOlder(t *testing.T) {
	g := NewGuard()
	ctxA, a := g.Begin(context.Background(), "sess|orders")
	ctxB, b := g.Begin(context.Background(), "sess|orders")

	assert.False(t, g.Current(a))
	assert.True(t, g.Current(b))
	assert.ErrorIs(t, ctxA.Err(), context.Canceled)
	assert.NoError(t, ctxB.Err())

	g.End(a)
	assert.True(t, g.Current(b), "ending a stale ticket must not drop the live one")
	g.End(b)
	assert.Equal(t, 0, g.Len())
}

func TestGuard_KeysAreIndependent(t *testing.T) {
	g := NewGuard()
	_, a := g.Begin(context.Background(), "s1|orders")
	_, b := g.Begin(context.Background(), "s2|orders")

	assert.True(t, g.Current(a))
	assert.True(t, g.Current(b))
}

// A slow first fetch that resolves after a fast second one must not be applied.
func TestGuard_LateResponseDiscarded(t *testing.T) {
	g := NewGuard()
	var (
		mu      sync.Mutex
		applied []string
	)
	apply := func(tk Ticket, items string) {
		mu.Lock()
		defer mu.Unlock()
		if g.Current(tk) {
			applied = append(applied, items)
		}
	}

	releaseA := make(chan struct{})
	doneA := make(chan struct{})

	_, a := g.Begin(context.Background(), "sess|cancel-orders")
	go func() {
		defer close(doneA)
		<-releaseA
		apply(a, "A")
	}()

	_, b := g.Begin(context.Background(), "sess|cancel-orders")
	apply(b, "B")
	close(releaseA)

	select {
	case <-doneA:
	case <-time.After(time.Second):
		t.Fatal("fetch A did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"B"}, applied)
}

func TestGuard_ParentCancellation(t *testing.T) {
	g := NewGuard()
	parent, cancel := context.WithCancel(context.Background())
	ctx, tk := g.Begin(parent, "k")
	cancel()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.True(t, g.Current(tk))
	g.End(tk)
}

func TestGuard_ConcurrentBeginKeepsNewestGeneration(t *testing.T) {
	g := NewGuard()
	const n = 64

	type started struct {
		ctx    context.Context
		ticket Ticket
	}
	results := make([]started, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, tk := g.Begin(context.Background(), "sess|bills")
			results[i] = started{ctx: ctx, ticket: tk}
		}()
	}
	wg.Wait()

	var newest Ticket
	for _, r := range results {
		if r.ticket.gen > newest.gen {
			newest = r.ticket
		}
	}

	current := 0
	for _, r := range results {
		if g.Current(r.ticket) {
			current++
			assert.Equal(t, newest.gen, r.ticket.gen)
			assert.NoError(t, r.ctx.Err())
			continue
		}
		assert.ErrorIs(t, r.ctx.Err(), context.Canceled)
	}
	assert.Equal(t, 1, current)
}
