package seed

import (
	"context"
	"fmt"
	"log"

	"storefront-cart/internal/cartengine"
	"storefront-cart/internal/domain"
	"storefront-cart/internal/session"
	"storefront-cart/internal/snapshot"
)

// DemoSession is the session id the seeded cart is stored under.
const DemoSession = "demo"

// Apply writes a demo cart snapshot for manual testing. It is idempotent: the
// demo session's snapshot is rebuilt from scratch on every run.
func Apply(ctx context.Context, store snapshot.Store, logger *log.Logger) error {
	engine := cartengine.New(store, session.Key(DemoSession), logger)
	if err := engine.ClearCart(ctx); err != nil {
		return fmt.Errorf("reset demo cart: %w", err)
	}

	shirt := domain.Product{
		ID:          "demo-shirt",
		StoreID:     "demo-store",
		Name:        "Demo T-Shirt",
		Description: "Soft cotton tee for demo purposes",
		Images:      []string{"https://cdn.example.com/demo-shirt.jpg"},
		Price:       19.99,
		HasVariants: true,
	}
	shirtM := &domain.Variant{
		ID:      "demo-shirt-m",
		SKU:     "SKU-DEMO-TSHIRT-M",
		Price:   19.99,
		Stock:   25,
		Options: map[string]string{"Size": "M"},
	}
	if err := engine.AddItem(ctx, shirt, shirtM, 2); err != nil {
		return fmt.Errorf("seed shirt: %w", err)
	}

	mug := domain.Product{
		ID:          "demo-mug",
		StoreID:     "demo-store",
		Name:        "Demo Mug",
		Description: "Ceramic mug with demo logo",
		Images:      []string{"https://cdn.example.com/demo-mug.jpg"},
		Price:       12.99,
	}
	if err := engine.AddItem(ctx, mug, nil, 1); err != nil {
		return fmt.Errorf("seed mug: %w", err)
	}

	return nil
}
