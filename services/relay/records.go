package relay

// Record types recognised by the back-office inbox.
const (
	TypeServiceBooking = "SERVICE_BOOKING"
	TypeEcommerceOrder = "ECOMMERCE_ORDER"
	TypeProfileUpdate  = "PROFILE_UPDATE"
)

// BookingRecord is the booking-intent payload forwarded when a wizard
// submission is confirmed.
type BookingRecord struct {
	Subject            string  `json:"_subject"`
	Type               string  `json:"type"`
	ServiceID          string  `json:"serviceId"`
	ServiceTitle       string  `json:"serviceTitle"`
	Price              float64 `json:"price"`
	PickAndDropService string  `json:"pickAndDropService"` // "YES" or "NO"
	PickupAddress      string  `json:"pickupAddress"`      // "N/A" without pick-and-drop
	DropoffAddress     string  `json:"dropoffAddress"`
	ProviderID         string  `json:"providerId"`
	ProviderName       string  `json:"providerName"`
	AppointmentDate    string  `json:"appointmentDate"`
	AppointmentTime    string  `json:"appointmentTime"`
	CustomerName       string  `json:"customerName"`
	CustomerLocation   string  `json:"customerLocation"`
	CustomerTier       string  `json:"customerTier"`
	BookingCreated     string  `json:"bookingCreated"`
}

// OrderRecord is the order-intent payload forwarded on checkout.
type OrderRecord struct {
	Subject          string  `json:"_subject"`
	Type             string  `json:"type"`
	CustomerName     string  `json:"customerName"`
	CustomerLocation string  `json:"customerLocation"`
	CustomerTier     string  `json:"customerTier"`
	Items            string  `json:"items"` // concatenated line-item descriptions
	Subtotal         float64 `json:"subtotal"`
	Tax              float64 `json:"tax"`
	TotalAmount      float64 `json:"totalAmount"`
	OrderDate        string  `json:"orderDate"`
}

// ProfileUpdateRecord is forwarded when the user edits their profile.
type ProfileUpdateRecord struct {
	Subject          string `json:"_subject"`
	Type             string `json:"type"`
	OriginalName     string `json:"originalName"`
	OriginalLocation string `json:"originalLocation"`
	NewName          string `json:"newName"`
	NewLocation      string `json:"newLocation"`
	UpdatedAt        string `json:"updatedAt"`
}
