package domain

import "sort"

// Product is the catalog input to an add-to-cart operation. The cart never
// calls back into the catalog; the caller supplies the product fully formed.
type Product struct {
	ID          string   `json:"id"`
	StoreID     string   `json:"storeId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Price       float64  `json:"price"`
	HasVariants bool     `json:"hasVariants"`
}

// Variant is a concrete selection of a variant-enabled product.
type Variant struct {
	ID       string            `json:"id"`
	SKU      string            `json:"sku,omitempty"`
	Price    float64           `json:"price"`
	Stock    int               `json:"stock"`
	ImageURL string            `json:"imageUrl,omitempty"`
	Options  map[string]string `json:"options,omitempty"`
}

// Label renders the option selection as a display string, e.g.
// "Size: M, Color: Red". Falls back to the SKU when no options are set.
func (v Variant) Label() string {
	if len(v.Options) == 0 {
		return v.SKU
	}
	out := ""
	for _, name := range sortedKeys(v.Options) {
		if out != "" {
			out += ", "
		}
		out += name + ": " + v.Options[name]
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
