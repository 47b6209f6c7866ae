package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-cart/internal/domain"
	"storefront-cart/internal/snapshot/memory"
)

func TestEngineIsStablePerSession(t *testing.T) {
	m := NewManager(memory.New(), nil)
	ctx := context.Background()

	first := m.Engine(ctx, "sess-1")
	second := m.Engine(ctx, "sess-1")
	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Len())
}

func TestSessionsDoNotShareCarts(t *testing.T) {
	m := NewManager(memory.New(), nil)
	ctx := context.Background()

	a := m.Engine(ctx, "sess-a")
	b := m.Engine(ctx, "sess-b")
	require.NoError(t, a.AddItem(ctx, domain.Product{ID: "p1", Name: "Apples", Price: 2}, nil, 1))

	assert.Equal(t, 1, a.LineCount())
	assert.Equal(t, 0, b.LineCount())
	assert.Equal(t, 2, m.Len())
}

func TestEngineHydratesFromStoreOnFirstAccess(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	raw := `[{"productId":"p1","name":"Apples","quantity":2,"unitPrice":2,"storeId":"s1","thumbnailUrl":"apples.jpg","description":""}]`
	require.NoError(t, store.Set(ctx, Key("sess-1"), raw))

	m := NewManager(store, nil)
	engine := m.Engine(ctx, "sess-1")

	require.Equal(t, 1, engine.LineCount())
	assert.Equal(t, 2, engine.TotalQuantity())
	assert.Equal(t, "p1", engine.Lines()[0].ProductID)
}

func TestEngineHydrationIsFailOpen(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, Key("sess-1"), "{broken"))

	m := NewManager(store, nil)
	engine := m.Engine(ctx, "sess-1")
	assert.Equal(t, 0, engine.LineCount())
}

func TestConcurrentAccessYieldsOneEngine(t *testing.T) {
	m := NewManager(memory.New(), nil)
	ctx := context.Background()

	const workers = 16
	engines := make([]any, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			engines[i] = m.Engine(ctx, "sess-1")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, engines[0], engines[i])
	}
	assert.Equal(t, 1, m.Len())
}
