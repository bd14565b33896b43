// Package session holds the per-user application state: profile, wishlist
// and cart registers, catalog browse filters, the booking wizard, the
// checkout flow and the concierge transcript. There are no package-level
// mutable globals; every component reaches shared state through its session.
package session

import (
	"sync"

	"tumy/models"
	"tumy/services/catalog"
	"tumy/services/checkout"
	"tumy/services/wizard"
	"tumy/store"
)

// Browse is the catalog filter state: the category toggle set, the free-text
// query and the semantic-match result set (nil when inactive).
type Browse struct {
	mu        sync.Mutex
	selection *catalog.Selection
	query     string
	aiMatch   []string
}

func newBrowse() *Browse {
	return &Browse{selection: catalog.NewSelection()}
}

// ToggleCategory flips a category chip.
func (b *Browse) ToggleCategory(category string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selection.Toggle(category)
	return b.selection.Selected()
}

// SetQuery records the free-text query and its semantic-match ids (nil for
// short queries, which deactivates the AI result set).
func (b *Browse) SetQuery(query string, aiMatch []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = query
	b.aiMatch = aiMatch
}

// Clear resets the query and deactivates any semantic-match results.
func (b *Browse) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = ""
	b.aiMatch = nil
}

// Filters returns the current selection, query and match set.
func (b *Browse) Filters() (selected []string, query string, aiMatch []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection.Selected(), b.query, b.aiMatch
}

// Session is one user's in-memory application state.
type Session struct {
	ID string

	mu   sync.Mutex
	user models.UserProfile

	Wishlist *store.Wishlist
	Cart     *store.Cart
	Browse   *Browse
	Wizard   *wizard.Wizard
	Checkout *checkout.Flow
	Chat     *Transcript
}

// User returns a snapshot of the profile.
func (s *Session) User() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) setUser(name, location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Name = name
	s.user.Location = location
}
