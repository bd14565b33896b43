package models

// ServiceCategory classifies a bookable service. The set is closed.
type ServiceCategory string

const (
	CategoryVehicle       ServiceCategory = "VEHICLE"
	CategoryProperty      ServiceCategory = "PROPERTY"
	CategoryLuxury        ServiceCategory = "LUXURY"
	CategoryCustomization ServiceCategory = "CUSTOMIZATION"
)

// Service represents a bookable service in the catalog.
type Service struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"` // KES
	Category      ServiceCategory `json:"category"`
	Image         string          `json:"image"`
	Duration      string          `json:"duration"` // free-text label, e.g. "6 Hours", "2 Days"
	PremiumOnly   bool            `json:"premiumOnly,omitempty"`
	AverageRating float64         `json:"averageRating,omitempty"`
	ReviewCount   int             `json:"reviewCount,omitempty"`
}
