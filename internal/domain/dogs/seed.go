package dogs

import "time"

// Samples son los dos perros de ejemplo con los que se siembra el
// sitio recién provisionado. También son lo que muestra la página
// pública cuando el espejo local nunca se pobló.
func Samples(now time.Time) []Dog {
	return []Dog{
		{
			Name:        "Luna",
			Breed:       "Golden Retriever",
			Age:         "2 years",
			Size:        "Large",
			Personality: []string{"Friendly", "Energetic", "Loyal"},
			Description: "Luna is a beautiful golden retriever who loves playing fetch and swimming. She's great with kids and other dogs!",
			Images:      []string{"/assets/dogs-grid.jpg"},
			Location:    "San Francisco, CA",
			IsSponsored: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Name:        "Max",
			Breed:       "Corgi",
			Age:         "3 years",
			Size:        "Medium",
			Personality: []string{"Playful", "Smart", "Gentle"},
			Description: "Max is an adorable corgi with the sweetest personality. He loves cuddles and is perfect for apartment living.",
			Images:      []string{"/assets/dogs-grid.jpg"},
			Location:    "Los Angeles, CA",
			IsSponsored: false,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
