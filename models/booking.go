package models

// BookingStatus is the lifecycle state of a booking. The admin surface cycles
// PENDING -> CONFIRMED -> COMPLETED -> PENDING; CANCELLED and IN_PROGRESS are
// only ever set by seed data.
type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingInProgress BookingStatus = "IN_PROGRESS"
	BookingCompleted  BookingStatus = "COMPLETED"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Booking represents a scheduled service appointment.
type Booking struct {
	ID           string        `json:"id"`
	ServiceID    string        `json:"serviceId"`
	UserID       string        `json:"userId"`
	UserName     string        `json:"userName"`
	ProviderID   string        `json:"providerId"`
	ProviderName string        `json:"providerName"`
	Date         string        `json:"date"` // display label, e.g. "Oct 24, 2023"
	Time         string        `json:"time"` // display label, e.g. "10:00 AM"
	Status       BookingStatus `json:"status"`
	Total        float64       `json:"total"`
}
