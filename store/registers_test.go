package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlistToggleIsIdempotentPair(t *testing.T) {
	w := NewWishlist()

	assert.True(t, w.Toggle("s1"))
	assert.True(t, w.Has("s1"))
	assert.Equal(t, 1, w.Len())

	assert.False(t, w.Toggle("s1"))
	assert.False(t, w.Has("s1"))
	assert.Zero(t, w.Len())
}

func TestWishlistHoldsNoDuplicates(t *testing.T) {
	w := NewWishlist()

	w.Toggle("s2")
	w.Toggle("s1")
	w.Toggle("s2") // removed again
	w.Toggle("s2")

	assert.Equal(t, []string{"s1", "s2"}, w.IDs())
}

func TestCartKeepsDuplicateLineItems(t *testing.T) {
	c := NewCart()

	c.Add("p1")
	c.Add("p2")
	c.Add("p1")

	assert.Equal(t, []string{"p1", "p2", "p1"}, c.Items())
	assert.Equal(t, 3, c.Len())
}

func TestCartRemoveAtIsPositional(t *testing.T) {
	c := NewCart()
	c.Add("p1")
	c.Add("p2")
	c.Add("p1")

	c.RemoveAt(1)
	assert.Equal(t, []string{"p1", "p1"}, c.Items())

	// Out-of-range removals leave the cart untouched.
	c.RemoveAt(-1)
	c.RemoveAt(2)
	assert.Equal(t, []string{"p1", "p1"}, c.Items())
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	c.Add("p1")

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Items())
}
