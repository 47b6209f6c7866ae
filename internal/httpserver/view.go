package httpserver

import (
	"storefront-cart/internal/cartengine"
	"storefront-cart/internal/domain"
)

// cartView is the wire representation of the current cart: the line list plus
// the derived totals the storefront UI renders.
type cartView struct {
	Lines         []domain.CartLine `json:"lines"`
	LineCount     int               `json:"lineCount"`
	TotalQuantity int               `json:"totalQuantity"`
	TotalValue    float64           `json:"totalValue"`
}

// toCartView builds the response from one engine snapshot, so the totals can
// never disagree with the line list when another request mutates the cart
// mid-render.
func toCartView(engine *cartengine.Engine) cartView {
	snap := engine.Snapshot()
	return cartView{
		Lines:         snap.Lines,
		LineCount:     snap.LineCount,
		TotalQuantity: snap.TotalQuantity,
		TotalValue:    snap.TotalValue,
	}
}
