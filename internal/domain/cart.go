package domain

// CartLine is one line item in a session cart. The descriptive fields are a
// point-in-time snapshot copied from the catalog at add-time and are never
// re-synced with the catalog afterwards.
type CartLine struct {
	ProductID    string  `json:"productId"`
	VariantID    *string `json:"variantId,omitempty"`
	Name         string  `json:"name"`
	VariantLabel *string `json:"variantLabel,omitempty"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	SKU          *string `json:"sku,omitempty"`
	StoreID      string  `json:"storeId"`
	Description  string  `json:"description"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int     `json:"quantity"`
}

// Key returns the identity tuple of the line.
func (l CartLine) Key() LineKey {
	return NewLineKey(l.ProductID, l.VariantID)
}

// Total is the monetary value of the line.
func (l CartLine) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// LineKey identifies a cart line by product and optional variant. An absent
// variant is one distinct identity, not a wildcard.
type LineKey struct {
	ProductID  string
	VariantID  string
	HasVariant bool
}

// NewLineKey builds a null-safe identity tuple. A nil or empty variant id is
// normalized to the single "no variant" identity.
func NewLineKey(productID string, variantID *string) LineKey {
	k := LineKey{ProductID: productID}
	if variantID != nil && *variantID != "" {
		k.VariantID = *variantID
		k.HasVariant = true
	}
	return k
}
