package store

import (
	"sort"
	"sync"
)

// Wishlist is a set of service identifiers with membership semantics: no
// duplicates, order irrelevant.
type Wishlist struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewWishlist() *Wishlist {
	return &Wishlist{ids: make(map[string]struct{})}
}

// Toggle flips membership of the given service id and reports whether the
// id is present after the call. Two consecutive toggles are a net no-op.
func (w *Wishlist) Toggle(serviceID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.ids[serviceID]; ok {
		delete(w.ids, serviceID)
		return false
	}
	w.ids[serviceID] = struct{}{}
	return true
}

// Has reports membership.
func (w *Wishlist) Has(serviceID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.ids[serviceID]
	return ok
}

// IDs returns the members sorted for stable output.
func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.ids))
	for id := range w.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.ids)
}

// Cart is an ordered sequence of product identifiers. Adding the same
// product twice yields two line items; removal is positional.
type Cart struct {
	mu    sync.Mutex
	items []string
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line item. Duplicates are permitted.
func (c *Cart) Add(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, productID)
}

// RemoveAt deletes the line item at the given index, leaving duplicates of
// the same product at other positions intact. An out-of-range index is a
// no-op.
func (c *Cart) RemoveAt(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Items returns a copy of the line items in order.
func (c *Cart) Items() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
