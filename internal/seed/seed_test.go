package seed

import (
	"context"
	"testing"

	"storefront-cart/internal/cartengine"
	"storefront-cart/internal/session"
	"storefront-cart/internal/snapshot/memory"
)

func TestApplyWritesDemoCart(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	if err := Apply(ctx, store, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}

	engine := cartengine.New(store, session.Key(DemoSession), nil)
	if err := engine.LoadCart(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := engine.LineCount(); got != 2 {
		t.Fatalf("expected 2 demo lines, got %d", got)
	}
	if got := engine.TotalQuantity(); got != 3 {
		t.Fatalf("expected total quantity 3, got %d", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	if err := Apply(ctx, store, nil); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := Apply(ctx, store, nil); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	engine := cartengine.New(store, session.Key(DemoSession), nil)
	if err := engine.LoadCart(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := engine.LineCount(); got != 2 {
		t.Fatalf("seeding twice must not duplicate lines, got %d", got)
	}
}
