package catalog

import "github.com/Domenick1991/kiosk/internal/domain"

// Seed is the bundled catalog shown until, or instead of, the remote one.
func Seed() []domain.Destination {
	return []domain.Destination{
		{
			ID:          "kruger",
			Name:        "Kruger National Park",
			Country:     "South Africa",
			Category:    "Wildlife",
			ImageURL:    "/images/destinations/kruger.jpg",
			Description: "One of Africa's largest game reserves, home to the Big Five and more than 500 bird species.",
			Activities: []string{
				"Guided game drives",
				"Bush walks with armed rangers",
				"Sunset and night safaris",
				"Bird watching",
			},
			HasAnimalTracking: true,
		},
		{
			ID:          "panorama",
			Name:        "Panorama Route",
			Country:     "South Africa",
			Category:    "Scenic",
			ImageURL:    "/images/destinations/panorama.jpg",
			Description: "A scenic road along the Drakensberg escarpment with waterfalls, viewpoints and rock formations.",
			Activities: []string{
				"God's Window viewpoint",
				"Bourke's Luck Potholes",
				"Three Rondavels lookout",
				"Waterfall hopping",
			},
		},
		{
			ID:          "blyde-canyon",
			Name:        "Blyde River Canyon",
			Country:     "South Africa",
			Category:    "Nature",
			ImageURL:    "/images/destinations/blyde-canyon.jpg",
			Description: "One of the largest green canyons on earth, carved by the Blyde River through red sandstone.",
			Activities: []string{
				"Boat trips on the Blydepoort Dam",
				"Hiking trails",
				"Abseiling",
			},
		},
		{
			ID:          "sabi-sand",
			Name:        "Sabi Sand Game Reserve",
			Country:     "South Africa",
			Category:    "Wildlife",
			ImageURL:    "/images/destinations/sabi-sand.jpg",
			Description: "Private reserve bordering Kruger, known for leopard sightings and luxury lodges.",
			Activities: []string{
				"Leopard tracking",
				"Luxury lodge stays",
				"Open-vehicle safaris",
			},
			HasAnimalTracking: true,
		},
		{
			ID:          "pilgrims-rest",
			Name:        "Pilgrim's Rest",
			Country:     "South Africa",
			Category:    "Heritage",
			ImageURL:    "/images/destinations/pilgrims-rest.jpg",
			Description: "A preserved gold-rush village from the 1870s, now a living museum.",
			Activities: []string{
				"Gold panning",
				"Historic village tours",
				"Museum visits",
			},
		},
		{
			ID:          "sudwala",
			Name:        "Sudwala Caves",
			Country:     "South Africa",
			Category:    "Adventure",
			ImageURL:    "/images/destinations/sudwala.jpg",
			Description: "The oldest known caves in the world, formed in Precambrian dolomite.",
			Activities: []string{
				"Guided cave tours",
				"Crystal tour",
				"Dinosaur park",
			},
		},
	}
}
