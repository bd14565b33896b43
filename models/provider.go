package models

// ProviderTier ranks a provider within the network.
type ProviderTier string

const (
	TierStandard ProviderTier = "Standard"
	TierElite    ProviderTier = "Elite"
	TierMaster   ProviderTier = "Master"
)

// ServiceProvider is read-only reference data describing an expert who can be
// assigned to a booking.
type ServiceProvider struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Role           string            `json:"role"`
	Image          string            `json:"image"`
	Rating         float64           `json:"rating"`
	JobsCompleted  int               `json:"jobsCompleted"`
	Tier           ProviderTier      `json:"tier"`
	Specialization []ServiceCategory `json:"specialization"`
	Bio            string            `json:"bio"`
}

// Specializes reports whether the provider covers the given category.
func (p ServiceProvider) Specializes(category ServiceCategory) bool {
	for _, c := range p.Specialization {
		if c == category {
			return true
		}
	}
	return false
}
