package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-cart/internal/cartengine"
	"storefront-cart/internal/domain"
)

// SessionProvider yields the cart engine bound to a session id.
type SessionProvider interface {
	Engine(ctx context.Context, sessionID string) *cartengine.Engine
}

type addItemRequest struct {
	Product  domain.Product  `json:"product"`
	Variant  *domain.Variant `json:"variant,omitempty"`
	Quantity *int            `json:"quantity,omitempty"`
}

type lineRefRequest struct {
	ProductID string  `json:"productId"`
	VariantID *string `json:"variantId,omitempty"`
}

func getCartHandler(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine := sessions.Engine(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartView(engine))
	}
}

func addItemHandler(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}

		engine := sessions.Engine(c.Request.Context(), sessionID(c))
		if err := engine.AddItem(c.Request.Context(), req.Product, req.Variant, qty); err != nil {
			if errors.Is(err, domain.ErrMissingProduct) || errors.Is(err, domain.ErrInvalidQuantity) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "add item failed"})
			return
		}
		c.JSON(http.StatusOK, toCartView(engine))
	}
}

func removeItemHandler(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindLineRef(c)
		if !ok {
			return
		}
		engine := sessions.Engine(c.Request.Context(), sessionID(c))
		if err := engine.RemoveItem(c.Request.Context(), req.ProductID, req.VariantID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "remove item failed"})
			return
		}
		c.JSON(http.StatusOK, toCartView(engine))
	}
}

func incrementItemHandler(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindLineRef(c)
		if !ok {
			return
		}
		engine := sessions.Engine(c.Request.Context(), sessionID(c))
		if err := engine.IncrementItem(c.Request.Context(), req.ProductID, req.VariantID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "increment failed"})
			return
		}
		c.JSON(http.StatusOK, toCartView(engine))
	}
}

func decrementItemHandler(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindLineRef(c)
		if !ok {
			return
		}
		engine := sessions.Engine(c.Request.Context(), sessionID(c))
		if err := engine.DecrementItem(c.Request.Context(), req.ProductID, req.VariantID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decrement failed"})
			return
		}
		c.JSON(http.StatusOK, toCartView(engine))
	}
}

func clearCartHandler(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine := sessions.Engine(c.Request.Context(), sessionID(c))
		if err := engine.ClearCart(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "clear failed"})
			return
		}
		c.JSON(http.StatusOK, toCartView(engine))
	}
}

func bindLineRef(c *gin.Context) (lineRefRequest, bool) {
	var req lineRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return lineRefRequest{}, false
	}
	if req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
		return lineRefRequest{}, false
	}
	return req, true
}
