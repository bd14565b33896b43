package handlers

import "tumy/services/session"

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	Sessions  *session.Manager
	Catalog   *CatalogHandler
	Booking   *BookingHandler
	Wishlist  *WishlistHandler
	Cart      *CartHandler
	Concierge *ConciergeHandler
	Profile   *ProfileHandler
	Admin     *AdminHandler
}
