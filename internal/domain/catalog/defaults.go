package catalog

// DefaultServices returns the built-in service list used to seed an empty
// store on first boot.
func DefaultServices() []Service {
	return []Service{
		{
			Title:       "General House Cleaning",
			Icon:        "🏠",
			Description: "Full-home cleaning for living rooms, bedrooms, kitchens, and bathrooms with eco-friendly products.",
		},
		{
			Title:       "Kitchen Cleaning",
			Icon:        "🍳",
			Description: "Deep cleaning of countertops, sinks, cabinets, and appliances with grease and grime removal.",
		},
		{
			Title:       "Window Cleaning",
			Icon:        "🪟",
			Description: "Interior and exterior window washing with streak-free results for homes and businesses.",
		},
		{
			Title:       "Sofa Cleaning",
			Icon:        "🛋️",
			Description: "Deep cleaning for fabric, microfiber, and leather sofas with stain and odor removal.",
		},
		{
			Title:       "Mattress Cleaning",
			Icon:        "🛏️",
			Description: "Deep extraction of dirt, stains, and allergens for a healthy sleep environment.",
		},
		{
			Title:       "Tiles & Cabros Cleaning",
			Icon:        "🧱",
			Description: "High-pressure washing for indoor tiles and outdoor surfaces like driveways and walkways.",
		},
		{
			Title:       "Office Cleaning",
			Icon:        "🏢",
			Description: "Professional office cleaning for desks, floors, restrooms, and common areas.",
		},
		{
			Title:       "Fumigation & Pest Control",
			Icon:        "🦟",
			Description: "Safe extermination and prevention of rodents, termites, bedbugs, and other pests.",
		},
		{
			Title:       "Car Interior & Rims Cleaning",
			Icon:        "🚗",
			Description: "Deep cleaning for car interiors and professional rims polishing service.",
		},
		{
			Title:       "Sofa Repair & Refurbishment",
			Icon:        "🔧",
			Description: "Professional repair, reupholstery, and restoration of sofas and furniture.",
		},
	}
}

// DefaultPackages returns the built-in package list used to seed an empty
// store on first boot.
func DefaultPackages() []Package {
	return []Package{
		{
			Title:       "The Home Refresh Package",
			Includes:    []string{"General House Cleaning", "Kitchen Cleaning", "Window Cleaning"},
			Description: "Perfect for homeowners who want an all-round refresh for frequently used spaces.",
		},
		{
			Title:       "The Deep Comfort Package",
			Includes:    []string{"Sofa Cleaning", "Mattress Cleaning", "Car Interior Cleaning"},
			Description: "Designed for people who want their living and resting spaces deeply cleaned and revitalized.",
		},
		{
			Title:       "The Sparkle & Shine Package",
			Includes:    []string{"Window Cleaning", "Tiles & Cabros Cleaning", "Rims Cleaning"},
			Description: "A full shine-focused package for both home and car.",
		},
		{
			Title:       "The Healthy Home Defender",
			Includes:    []string{"General House Cleaning", "Fumigation & Pest Control", "Mattress Cleaning"},
			Description: "Ideal for homes dealing with allergies, pests, or wanting a sanitized environment.",
		},
		{
			Title:       "The Premium Property Makeover",
			Includes:    []string{"Tiles & Cabros Cleaning", "Window Cleaning", "Sofa Repair & Refurbishment"},
			Description: "A combination that improves both interior beauty and exterior appeal.",
		},
		{
			Title:       "The Office Productivity Boost",
			Includes:    []string{"Office Cleaning", "Window Cleaning", "Fumigation & Pest Control"},
			Description: "A professional package for healthier, brighter, and more inviting workspaces.",
		},
		{
			Title:       "The Family Comfort Care Package",
			Includes:    []string{"Kitchen Cleaning", "General House Cleaning", "Sofa Cleaning", "Mattress Cleaning"},
			Description: "Covers the most used home spaces for families with children or frequent visitors.",
		},
		{
			Title:       "The Executive Car & Home Glow",
			Includes:    []string{"Car Interior & Rims Cleaning", "Sofa Cleaning", "Tiles Cleaning"},
			Description: "A lifestyle-focused package for clients who want both their homes and cars spotless.",
		},
		{
			Title:       "The Outdoor Revival Package",
			Includes:    []string{"Cabros Cleaning", "Tiles Cleaning", "Window Exterior Cleaning"},
			Description: "Brings back life to outdoor spaces, entryways, and facades.",
		},
		{
			Title:       "The All-in-One Luxury Clean",
			Includes:    []string{"General House Cleaning", "Kitchen Deep Clean", "Window Cleaning", "Sofa Cleaning", "Mattress Cleaning", "Fumigation & Pest Control"},
			Description: "Your full-service premium experience for clients who want everything handled at once.",
		},
	}
}
