package models

// LoyaltyTier is the ordered loyalty ladder: Bronze < Silver < Gold <
// Platinum < Diamond.
type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
	TierDiamond  LoyaltyTier = "Diamond"
)

// Rank returns the tier's position on the ladder, Bronze being 0. Unknown
// tiers rank below Bronze.
func (t LoyaltyTier) Rank() int {
	switch t {
	case TierBronze:
		return 0
	case TierSilver:
		return 1
	case TierGold:
		return 2
	case TierPlatinum:
		return 3
	case TierDiamond:
		return 4
	}
	return -1
}

// WealthIndex is a coarse classification of the user's location.
type WealthIndex string

const (
	WealthHigh     WealthIndex = "HIGH"
	WealthMedium   WealthIndex = "MEDIUM"
	WealthStandard WealthIndex = "STANDARD"
)

// UserProfile holds the account data for a session's user. Only name and
// location are mutable, via a profile-edit submission.
type UserProfile struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Location            string      `json:"location"`
	Tier                LoyaltyTier `json:"tier"`
	Points              int         `json:"points"`
	TotalSpent          float64     `json:"totalSpent"`
	LocationWealthIndex WealthIndex `json:"locationWealthIndex"`
}

// FirstName returns the leading word of the display name.
func (u UserProfile) FirstName() string {
	for i := 0; i < len(u.Name); i++ {
		if u.Name[i] == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
