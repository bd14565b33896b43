package store

import (
	"sync"

	"tumy/models"
)

// Bookings holds the mock booking ledger shown in the admin back-office.
// The user-facing booking flow never appends here; it only forwards
// submissions to the relay sink.
type Bookings struct {
	mu   sync.RWMutex
	list []models.Booking
}

// NewBookings returns a ledger populated with the seed bookings.
func NewBookings() *Bookings {
	return &Bookings{list: seedBookings()}
}

// All returns a snapshot of the ledger.
func (b *Bookings) All() []models.Booking {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Booking, len(b.list))
	copy(out, b.list)
	return out
}

// ForUser returns the bookings belonging to the given user.
func (b *Bookings) ForUser(userID string) []models.Booking {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []models.Booking
	for _, bk := range b.list {
		if bk.UserID == userID {
			out = append(out, bk)
		}
	}
	return out
}

// CycleStatus advances a booking along the fixed admin cycle
// PENDING -> CONFIRMED -> COMPLETED -> PENDING. CANCELLED and IN_PROGRESS
// bookings are left untouched. The updated booking is returned; ok is false
// when no booking has the given id.
func (b *Bookings) CycleStatus(id string) (models.Booking, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, bk := range b.list {
		if bk.ID != id {
			continue
		}
		switch bk.Status {
		case models.BookingPending:
			bk.Status = models.BookingConfirmed
		case models.BookingConfirmed:
			bk.Status = models.BookingCompleted
		case models.BookingCompleted:
			bk.Status = models.BookingPending
		}
		b.list[i] = bk
		return bk, true
	}
	return models.Booking{}, false
}
