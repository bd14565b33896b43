package store

import "tumy/models"

// DefaultUser is the profile a fresh session starts with.
func DefaultUser() models.UserProfile {
	return models.UserProfile{
		ID:                  "u_alex",
		Name:                "Alex Kamau",
		Location:            "Karen, Nairobi",
		Tier:                models.TierPlatinum,
		Points:              12500,
		TotalSpent:          450000,
		LocationWealthIndex: models.WealthHigh,
	}
}

func seedProviders() []models.ServiceProvider {
	return []models.ServiceProvider{
		{
			ID:             "prov1",
			Name:           "James O.",
			Role:           "Elite Cleaning Master",
			Image:          "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=150",
			Rating:         4.9,
			JobsCompleted:  1240,
			Tier:           models.TierElite,
			Specialization: []models.ServiceCategory{models.CategoryVehicle},
			Bio:            "James is a certified master detailer with over 10 years of experience treating luxury vehicles. His obsession with perfection makes him the go-to for ceramic coatings.",
		},
		{
			ID:             "prov2",
			Name:           "Sarah K.",
			Role:           "Interior Specialist",
			Image:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=150",
			Rating:         4.8,
			JobsCompleted:  850,
			Tier:           models.TierStandard,
			Specialization: []models.ServiceCategory{models.CategoryProperty, models.CategoryLuxury},
			Bio:            "Sarah specializes in fabric restoration and eco-friendly deep cleaning for high-end homes. She brings a fresh, revitalizing touch to every space.",
		},
		{
			ID:             "prov3",
			Name:           "David M.",
			Role:           "Customization Lead",
			Image:          "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=150",
			Rating:         5.0,
			JobsCompleted:  430,
			Tier:           models.TierMaster,
			Specialization: []models.ServiceCategory{models.CategoryCustomization},
			Bio:            "Known as \"The Artist,\" David handles our most complex wraps and modifications. His work has been featured in international automotive magazines.",
		},
	}
}

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:            "s1",
			Title:         "Ceramic Coating Elite",
			Description:   "Immortalize your vehicle's finish. The ultimate hydrophobic shield that guarantees a 5-year showroom shine and effortless maintenance.",
			Price:         25000,
			Category:      models.CategoryVehicle,
			Image:         "https://images.unsplash.com/photo-1601362840469-51e4d8d58785?auto=format&fit=crop&q=80&w=400",
			Duration:      "6 Hours",
			PremiumOnly:   true,
			AverageRating: 4.9,
			ReviewCount:   128,
		},
		{
			ID:            "s2",
			Title:         "Mobile Executive Wash",
			Description:   "The CEO Standard. Command respect with a spotless exterior and pristine interior, delivered precisely to your schedule. Success loves cleanliness.",
			Price:         1500,
			Category:      models.CategoryVehicle,
			Image:         "https://images.unsplash.com/photo-1520340356584-7c903ccf70dc?auto=format&fit=crop&q=80&w=400",
			Duration:      "1 Hour",
			AverageRating: 4.7,
			ReviewCount:   850,
		},
		{
			ID:            "s13",
			Title:         "Signature Deep Detailing",
			Description:   "Reset your car to factory settings. We erase years of wear, restoring the new-car feel that you fell in love with. A mandatory refresh for high-value assets.",
			Price:         8500,
			Category:      models.CategoryVehicle,
			Image:         "https://images.unsplash.com/photo-1600661653561-629509216228?auto=format&fit=crop&q=80&w=400",
			Duration:      "4 Hours",
			AverageRating: 4.8,
			ReviewCount:   340,
		},
		{
			ID:            "s14",
			Title:         "Full Mechanical Repair",
			Description:   "Don't let a breakdown compromise your momentum. Our elite mechanics bring the dealership workshop to your driveway. Expert diagnostics, zero downtime.",
			Price:         5500,
			Category:      models.CategoryVehicle,
			Image:         "https://images.unsplash.com/photo-1530046339160-ce3e530c7d2f?auto=format&fit=crop&q=80&w=400",
			Duration:      "Varies",
			AverageRating: 4.6,
			ReviewCount:   120,
		},
		{
			ID:            "s3",
			Title:         "Deep Sofa Restoration",
			Description:   "Revitalize your living space. We eliminate allergens and restore the vibrancy of your luxury furniture, creating a healthier, more inviting home environment.",
			Price:         4500,
			Category:      models.CategoryProperty,
			Image:         "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?auto=format&fit=crop&q=80&w=400",
			Duration:      "2 Hours",
			AverageRating: 4.7,
			ReviewCount:   210,
		},
		{
			ID:            "s4",
			Title:         "Mansion Pressure Wash",
			Description:   "Curb appeal is everything. Blast away unsightly grime from your driveway and patios to reflect the true value of your property.",
			Price:         15000,
			Category:      models.CategoryProperty,
			Image:         "https://images.unsplash.com/photo-1581578731117-104f2a863a17?auto=format&fit=crop&q=80&w=400",
			Duration:      "4 Hours",
			AverageRating: 4.9,
			ReviewCount:   85,
		},
		{
			ID:            "s5",
			Title:         "Private Chef Experience",
			Description:   "Transform your home into a 5-star restaurant. Impress your guests with a bespoke culinary journey crafted by Nairobi's top chefs.",
			Price:         35000,
			Category:      models.CategoryLuxury,
			Image:         "https://images.unsplash.com/photo-1556910103-1c02745a30bf?auto=format&fit=crop&q=80&w=400",
			Duration:      "Evening",
			PremiumOnly:   true,
			AverageRating: 5.0,
			ReviewCount:   42,
		},
		{
			ID:            "s6",
			Title:         "Mechanic Diagnostics",
			Description:   "Knowledge is power. Identify hidden issues before they become expensive failures with our hospital-grade diagnostic scan.",
			Price:         3000,
			Category:      models.CategoryVehicle,
			Image:         "https://images.unsplash.com/photo-1487754180451-c456f719a1fc?auto=format&fit=crop&q=80&w=400",
			Duration:      "1 Hour",
			AverageRating: 4.5,
			ReviewCount:   150,
		},
		{
			ID:            "s7",
			Title:         "Premium Vehicle Wrap",
			Description:   "Reinvent your identity. Turn heads at every corner with a flawless, custom color change. Protect your original paint while expressing your unique style.",
			Price:         85000,
			Category:      models.CategoryCustomization,
			Image:         "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?auto=format&fit=crop&q=80&w=400",
			Duration:      "2 Days",
			PremiumOnly:   true,
			AverageRating: 4.9,
			ReviewCount:   67,
		},
		{
			ID:            "s8",
			Title:         "Ceramic Window Tinting",
			Description:   "Privacy meets performance. Reject 99% of UV rays and keep your cabin cool, while adding a mysterious, sophisticated aesthetic to your ride.",
			Price:         15000,
			Category:      models.CategoryCustomization,
			Image:         "https://images.unsplash.com/photo-1619642751034-765dfdf7c58e?auto=format&fit=crop&q=80&w=400",
			Duration:      "4 Hours",
			AverageRating: 4.7,
			ReviewCount:   190,
		},
		{
			ID:            "s9",
			Title:         "Audio System Upgrade",
			Description:   "Feel the bass, don't just hear it. Transform your commute into a private concert with a custom-tuned auditory experience.",
			Price:         45000,
			Category:      models.CategoryCustomization,
			Image:         "https://images.unsplash.com/photo-1545459720-aacaf5090834?auto=format&fit=crop&q=80&w=400",
			Duration:      "1 Day",
			AverageRating: 4.8,
			ReviewCount:   95,
		},
		{
			ID:            "s10",
			Title:         "Custom Body Kit & Pimping",
			Description:   "Aggressive stance, aerodynamic performance. Elevate your car from stock to shock. Be the envy of the road.",
			Price:         60000,
			Category:      models.CategoryCustomization,
			Image:         "https://images.unsplash.com/photo-1503376763036-066120622c74?auto=format&fit=crop&q=80&w=400",
			Duration:      "3 Days",
			AverageRating: 4.8,
			ReviewCount:   45,
		},
		{
			ID:            "s11",
			Title:         "Professional Paint Respray",
			Description:   "Perfection restored. A complete, gallery-quality respray that creates a depth and luster deeper than the day it left the factory.",
			Price:         120000,
			Category:      models.CategoryCustomization,
			Image:         "https://images.unsplash.com/photo-1625043484550-df60256f6ea5?auto=format&fit=crop&q=80&w=400",
			Duration:      "5 Days",
			PremiumOnly:   true,
			AverageRating: 5.0,
			ReviewCount:   28,
		},
		{
			ID:            "s12",
			Title:         "Music System Installation",
			Description:   "The heartbeat of your car. Professional installation of high-fidelity head units and speakers for crystal clear sound that cuts through the noise.",
			Price:         25000,
			Category:      models.CategoryCustomization,
			Image:         "https://images.unsplash.com/photo-1615906655593-ad0386982a0f?auto=format&fit=crop&q=80&w=400",
			Duration:      "6 Hours",
			AverageRating: 4.7,
			ReviewCount:   112,
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Meguiar's Gold Class Wax",
			Description: "The secret to that \"wet look\" shine. Trusted by professionals.",
			Price:       2800,
			Category:    "Car Care",
			Image:       "https://images.unsplash.com/photo-1601362840469-51e4d8d58785?auto=format&fit=crop&q=80&w=200",
			Rating:      4.8,
		},
		{
			ID:          "p2",
			Name:        "Dyson V15 Detect",
			Description: "Invest in the best. Unmatched power for a spotless home sanctuary.",
			Price:       125000,
			Category:    "Home",
			Image:       "https://images.unsplash.com/photo-1558317374-a3594743e466?auto=format&fit=crop&q=80&w=200",
			Rating:      4.9,
		},
		{
			ID:          "p3",
			Name:        "Chemical Guys Leather Kit",
			Description: "Preserve the luxury. Keep your leather soft, supple, and smelling new.",
			Price:       4500,
			Category:    "Car Care",
			Image:       "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?auto=format&fit=crop&q=80&w=200",
			Rating:      4.7,
		},
		{
			ID:          "p4",
			Name:        "JBL BassPro Hub",
			Description: "Hidden power. Add massive bass without sacrificing trunk space.",
			Price:       45000,
			Category:    "Audio",
			Image:       "https://images.unsplash.com/photo-1558486012-817176f84c6d?auto=format&fit=crop&q=80&w=200",
			Rating:      4.9,
		},
		{
			ID:          "p5",
			Name:        "3M Vinyl Wrap Roll (Matte Black)",
			Description: "Customize it yourself. Professional grade vinyl for elite results.",
			Price:       8500,
			Category:    "Customization",
			Image:       "https://images.unsplash.com/photo-1549399542-7e3f8b79c341?auto=format&fit=crop&q=80&w=200",
			Rating:      4.6,
		},
	}
}

func seedReviews() []models.Review {
	return []models.Review{
		{
			ID:       "r1",
			UserID:   "u2",
			UserName: "Grace M.",
			Rating:   5,
			Comment:  "Absolutely stunning work! My car looks better than the day I bought it. James was professional and meticulous.",
			Date:     "2 days ago",
		},
		{
			ID:       "r2",
			UserID:   "u3",
			UserName: "Brian K.",
			Rating:   4,
			Comment:  "Great service, highly recommended. The team arrived on time and did a thorough job.",
			Date:     "1 week ago",
		},
		{
			ID:       "r3",
			UserID:   "u4",
			UserName: "Sophia L.",
			Rating:   5,
			Comment:  "The ceramic coating is a game changer. Rain just slides off! Worth every penny.",
			Date:     "2 weeks ago",
		},
	}
}

func seedBookings() []models.Booking {
	return []models.Booking{
		{ID: "bk-1023", ServiceID: "s1", UserID: "u55", UserName: "Kevin Hart", ProviderID: "prov1", ProviderName: "James O.", Date: "Oct 24, 2023", Time: "10:00 AM", Status: models.BookingCompleted, Total: 25000},
		{ID: "bk-1024", ServiceID: "s2", UserID: "u62", UserName: "Lupita N.", ProviderID: "prov2", ProviderName: "Sarah K.", Date: "Oct 25, 2023", Time: "02:00 PM", Status: models.BookingInProgress, Total: 1500},
		{ID: "bk-1025", ServiceID: "s7", UserID: "u71", UserName: "Trevor N.", ProviderID: "prov3", ProviderName: "David M.", Date: "Oct 26, 2023", Time: "09:00 AM", Status: models.BookingConfirmed, Total: 85000},
		{ID: "bk-8821", ServiceID: "s1", UserID: "u_alex", UserName: "Alex Kamau", ProviderID: "prov1", ProviderName: "James O.", Date: "Tomorrow", Time: "09:00 AM", Status: models.BookingConfirmed, Total: 25000},
		{ID: "bk-8822", ServiceID: "s4", UserID: "u_alex", UserName: "Alex Kamau", ProviderID: "prov2", ProviderName: "Sarah K.", Date: "Next Saturday", Time: "11:00 AM", Status: models.BookingPending, Total: 15000},
		{ID: "bk-1026", ServiceID: "s5", UserID: "u88", UserName: "Eliud K.", ProviderID: "prov2", ProviderName: "Sarah K.", Date: "Oct 26, 2023", Time: "06:00 PM", Status: models.BookingPending, Total: 35000},
		{ID: "bk-1027", ServiceID: "s2", UserID: "u91", UserName: "Maina K.", ProviderID: "prov1", ProviderName: "James O.", Date: "Oct 23, 2023", Time: "11:00 AM", Status: models.BookingCancelled, Total: 1500},
	}
}
