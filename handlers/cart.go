package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tumy/store"
	"tumy/utils"
)

// CartHandler exposes the cart register and the checkout flow.
type CartHandler struct {
	Catalog *store.Catalog
}

func NewCartHandler(cat *store.Catalog) *CartHandler {
	return &CartHandler{Catalog: cat}
}

func (h *CartHandler) respondCart(c *gin.Context) {
	sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"step":     sess.Checkout.Step().String(),
		"items":    sess.Checkout.Items(),
		"totals":   sess.Checkout.ComputeTotals(),
		"itemIds":  sess.Cart.Items(),
		"cartSize": sess.Cart.Len(),
	})
}

// Get returns the cart contents, totals and checkout step.
func (h *CartHandler) Get(c *gin.Context) {
	h.respondCart(c)
}

// Add appends a product line item. Duplicates yield separate line items.
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, ok := h.Catalog.ProductByID(input.ProductID); !ok {
		utils.JSONError(c, http.StatusNotFound, "product not found", input.ProductID)
		return
	}
	currentSession(c).Cart.Add(input.ProductID)
	h.respondCart(c)
}

// Remove deletes the line item at the given position. Out-of-range indices
// are a no-op, mirroring the bounds-checked register contract.
func (h *CartHandler) Remove(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index", c.Param("index"))
		return
	}
	currentSession(c).Checkout.RemoveItem(index)
	h.respondCart(c)
}

// Checkout starts processing the order.
func (h *CartHandler) Checkout(c *gin.Context) {
	sess := currentSession(c)
	sess.Checkout.Checkout(sess.User())
	h.respondCart(c)
}

// Done dismisses the success screen, clearing the register.
func (h *CartHandler) Done(c *gin.Context) {
	currentSession(c).Checkout.Done()
	h.respondCart(c)
}
