// Package cartengine maintains the authoritative in-memory cart for one
// client session and mirrors every mutation to a snapshot store.
package cartengine

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"
	"sync"

	"storefront-cart/internal/domain"
	"storefront-cart/internal/snapshot"
)

// PlaceholderThumbnail is used when neither the variant nor the product
// supplies an image.
const PlaceholderThumbnail = "placeholder.jpg"

// Engine owns an ordered list of cart lines keyed by (product, variant).
// Mutations serialize on one lock so that apply and persist never interleave
// between two callers; observers are invoked after the lock is released, but
// still before the triggering call returns. The in-memory state is the source
// of truth; persistence is best-effort durability across reloads.
type Engine struct {
	store  snapshot.Store
	key    string
	logger *log.Logger

	mu        sync.Mutex
	lines     []domain.CartLine
	observers map[int]func()
	nextObs   int
}

// New builds an Engine persisting under the given key. An empty key falls
// back to the well-known snapshot.CartKey; a nil logger discards output.
func New(store snapshot.Store, key string, logger *log.Logger) *Engine {
	if key == "" {
		key = snapshot.CartKey
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		store:     store,
		key:       key,
		logger:    logger,
		observers: make(map[int]func()),
	}
}

// AddItem merges the product (and optional variant selection) into the cart.
// If a line with the same identity tuple exists its quantity grows by qty and
// the existing descriptive snapshot is left untouched; otherwise a new line is
// appended with price and thumbnail resolved from the variant first, then the
// product.
func (e *Engine) AddItem(ctx context.Context, product domain.Product, variant *domain.Variant, qty int) error {
	if strings.TrimSpace(product.ID) == "" || strings.TrimSpace(product.Name) == "" {
		return domain.ErrMissingProduct
	}
	if qty < 1 {
		return domain.ErrInvalidQuantity
	}

	e.mu.Lock()
	key := lineKey(product, variant)
	if idx := e.indexOf(key); idx >= 0 {
		e.lines[idx].Quantity += qty
	} else {
		e.lines = append(e.lines, newLine(product, variant, qty))
	}
	e.commit(ctx)
	return nil
}

// IsInCart reports whether a line with the given identity tuple exists.
func (e *Engine) IsInCart(productID string, variantID *string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexOf(domain.NewLineKey(productID, variantID)) >= 0
}

// RemoveItem deletes the matching line entirely, regardless of quantity.
// A missing line is a no-op and nothing is persisted or broadcast.
func (e *Engine) RemoveItem(ctx context.Context, productID string, variantID *string) error {
	e.mu.Lock()
	idx := e.indexOf(domain.NewLineKey(productID, variantID))
	if idx < 0 {
		e.mu.Unlock()
		return nil
	}
	e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	e.commit(ctx)
	return nil
}

// IncrementItem raises the matching line's quantity by one. A missing line is
// treated as already removed, not as an error.
func (e *Engine) IncrementItem(ctx context.Context, productID string, variantID *string) error {
	e.mu.Lock()
	idx := e.indexOf(domain.NewLineKey(productID, variantID))
	if idx < 0 {
		e.mu.Unlock()
		return nil
	}
	e.lines[idx].Quantity++
	e.commit(ctx)
	return nil
}

// DecrementItem lowers the matching line's quantity by one and removes the
// line when it would drop below one. A line is never kept or persisted with a
// non-positive quantity.
func (e *Engine) DecrementItem(ctx context.Context, productID string, variantID *string) error {
	e.mu.Lock()
	idx := e.indexOf(domain.NewLineKey(productID, variantID))
	if idx < 0 {
		e.mu.Unlock()
		return nil
	}
	e.lines[idx].Quantity--
	if e.lines[idx].Quantity <= 0 {
		e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	}
	e.commit(ctx)
	return nil
}

// ClearCart removes all lines and persists the empty snapshot.
func (e *Engine) ClearCart(ctx context.Context) error {
	e.mu.Lock()
	e.lines = nil
	e.commit(ctx)
	return nil
}

// LoadCart hydrates the cart from the snapshot store. An absent or malformed
// snapshot leaves the cart empty; neither is surfaced as an error. Observers
// are always told once so they can refresh, even when the cart ends up empty.
func (e *Engine) LoadCart(ctx context.Context) error {
	e.mu.Lock()
	e.lines = nil
	raw, ok, err := e.store.Get(ctx, e.key)
	if err != nil {
		e.logger.Printf("load cart snapshot %q: %v", e.key, err)
	} else if ok && raw != "" {
		var lines []domain.CartLine
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			e.logger.Printf("discarding malformed cart snapshot %q: %v", e.key, err)
		} else {
			e.lines = sanitize(lines)
		}
	}
	e.broadcast()
	return nil
}

// Summary is a consistent view of the cart: the line list and the derived
// totals, all taken from the same state.
type Summary struct {
	Lines         []domain.CartLine
	LineCount     int
	TotalQuantity int
	TotalValue    float64
}

// Snapshot returns the lines and derived totals from a single lock hold, so
// the totals always agree with the line list even under concurrent mutations.
func (e *Engine) Snapshot() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := Summary{
		Lines:     make([]domain.CartLine, len(e.lines)),
		LineCount: len(e.lines),
	}
	copy(out.Lines, e.lines)
	for _, l := range e.lines {
		out.TotalQuantity += l.Quantity
		out.TotalValue += l.Total()
	}
	return out
}

// Lines returns a copy of the current lines in insertion order.
func (e *Engine) Lines() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// LineCount is the number of distinct lines.
func (e *Engine) LineCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// TotalQuantity is the sum of quantities across all lines.
func (e *Engine) TotalQuantity() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, l := range e.lines {
		total += l.Quantity
	}
	return total
}

// TotalValue is the sum of unit price times quantity across all lines.
func (e *Engine) TotalValue() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0.0
	for _, l := range e.lines {
		total += l.Total()
	}
	return total
}

// Subscribe registers an observer invoked synchronously after every
// successful mutation, once the mutation has been applied and its persistence
// write dispatched. Observers carry no payload and re-read current state
// through the accessors. The returned function unregisters the observer.
func (e *Engine) Subscribe(fn func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextObs
	e.nextObs++
	e.observers[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.observers, id)
	}
}

// indexOf must be called with the lock held.
func (e *Engine) indexOf(key domain.LineKey) int {
	for i, l := range e.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

// commit persists the mutated cart and then broadcasts it. Takes over the
// lock held by the caller; the lock is released before observers run.
func (e *Engine) commit(ctx context.Context) {
	e.persist(ctx)
	e.broadcast()
}

// broadcast releases the engine lock and then invokes the observers that were
// registered at the time of the mutation. Running the callbacks unlocked lets
// them re-read state through the accessors; they still complete before the
// triggering mutation returns.
func (e *Engine) broadcast() {
	observers := make([]func(), 0, len(e.observers))
	for _, fn := range e.observers {
		observers = append(observers, fn)
	}
	e.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}

// persist writes the full snapshot. Failures are logged and swallowed: the
// in-memory cart stays authoritative for the session. Called with the lock
// held so a second mutation cannot interleave with the write.
func (e *Engine) persist(ctx context.Context) {
	raw, err := json.Marshal(e.lines)
	if err != nil {
		e.logger.Printf("marshal cart snapshot %q: %v", e.key, err)
		return
	}
	if e.lines == nil {
		raw = []byte("[]")
	}
	if err := e.store.Set(ctx, e.key, string(raw)); err != nil {
		e.logger.Printf("persist cart snapshot %q: %v", e.key, err)
	}
}

func lineKey(product domain.Product, variant *domain.Variant) domain.LineKey {
	if variant == nil {
		return domain.NewLineKey(product.ID, nil)
	}
	return domain.NewLineKey(product.ID, &variant.ID)
}

func newLine(product domain.Product, variant *domain.Variant, qty int) domain.CartLine {
	line := domain.CartLine{
		ProductID:    product.ID,
		Name:         product.Name,
		ThumbnailURL: resolveThumbnail(product, variant),
		StoreID:      product.StoreID,
		Description:  product.Description,
		UnitPrice:    product.Price,
		Quantity:     qty,
	}
	if variant != nil && variant.ID != "" {
		id := variant.ID
		line.VariantID = &id
		if variant.Price > 0 {
			line.UnitPrice = variant.Price
		}
		if label := variant.Label(); label != "" {
			line.VariantLabel = &label
		}
		if variant.SKU != "" {
			sku := variant.SKU
			line.SKU = &sku
		}
	}
	return line
}

// resolveThumbnail picks the variant image, then the first product image,
// then the fixed placeholder.
func resolveThumbnail(product domain.Product, variant *domain.Variant) string {
	if variant != nil && variant.ImageURL != "" {
		return variant.ImageURL
	}
	for _, img := range product.Images {
		if strings.TrimSpace(img) != "" {
			return img
		}
	}
	return PlaceholderThumbnail
}

// sanitize drops lines a well-formed snapshot can never contain, so a
// hand-edited or partially corrupt store entry cannot smuggle in an invalid
// quantity.
func sanitize(lines []domain.CartLine) []domain.CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
