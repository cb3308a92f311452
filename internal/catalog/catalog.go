// Package catalog holds the static seed content for the virtual tour: the six
// Sikkim monasteries and the fixed travel guide. The data is read-only after
// startup; identifiers and creation timestamps are assigned at insert time.
package catalog

import "monastery-guide/internal/models"

// Monasteries returns a fresh copy of the seed set so callers can assign
// identifiers without mutating the package data.
func Monasteries() []*models.Monastery {
	seed := make([]*models.Monastery, len(monasteries))
	for i := range monasteries {
		m := monasteries[i]
		seed[i] = &m
	}
	return seed
}

var monasteries = []models.Monastery{
	{
		Name:                  "Rumtek Monastery",
		Location:              "Rumtek, East Sikkim",
		District:              "East Sikkim",
		Altitude:              "1,550 meters",
		Tradition:             "Kagyu School of Tibetan Buddhism",
		Description:           "Also known as the Dharma Chakra Centre, Rumtek is one of the largest monasteries in Sikkim and serves as the seat-in-exile of the Karmapa Lama.",
		Founded:               "1966 (originally 1734)",
		Architecture:          "Traditional Tibetan architecture with intricate woodwork and colorful murals",
		SpiritualSignificance: "Seat of the 16th Karmapa and center of Kagyu lineage in exile",
		MainImage:             "https://images.pexels.com/photos/32010298/pexels-photo-32010298.jpeg",
		GalleryImages: []string{
			"https://images.pexels.com/photos/32010298/pexels-photo-32010298.jpeg",
			"https://images.pexels.com/photos/2408167/pexels-photo-2408167.jpeg",
			"https://images.pexels.com/photos/19715251/pexels-photo-19715251.jpeg",
		},
		PanoramicImages: []string{
			"https://images.unsplash.com/photo-1687074106203-f3dad46d9eb6",
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
		},
		Coordinates:        models.Coordinates{Lat: 27.2996, Lng: 88.5565},
		Highlights:         []string{"Golden Stupa", "Shrine Hall", "Monastery Museum", "Sacred Dance Festival"},
		VisitingHours:      "6:00 AM - 6:00 PM",
		EntranceFee:        "Free",
		Accessibility:      "Road accessible, moderate walk from parking",
		CulturalImportance: "Most important Kagyu monastery in Sikkim, seat of Karmapa lineage",
		Festivals: []models.Festival{
			{
				Name:         "Kagyu Monlam",
				Date:         "February/March",
				Description:  "Annual prayer festival with masked dances",
				Significance: "Important spiritual gathering for Kagyu practitioners",
			},
			{
				Name:         "Buddha Purnima",
				Date:         "May",
				Description:  "Celebration of Buddha's birth, enlightenment, and death",
				Significance: "Most sacred day in Buddhist calendar",
			},
		},
		TravelInfo: models.TravelInfo{
			BestTimeToVisit: "March to June, September to December",
			NearestAirport:  "Bagdogra Airport (124 km)",
			Accommodation:   []string{"Hotel Sonam Delek", "Rumtek Monastery Guest House", "Gangtok Hotels"},
			LocalTransport:  "Shared jeeps, private taxis from Gangtok (24 km)",
			PermitsRequired: "Inner Line Permit for non-Indians",
			WeatherInfo:     "Pleasant climate, avoid monsoon season (July-August)",
		},
	},
	{
		Name:                  "Pemayangtse Monastery",
		Location:              "Pelling, West Sikkim",
		District:              "West Sikkim",
		Altitude:              "2,085 meters",
		Tradition:             "Nyingma School of Tibetan Buddhism",
		Description:           "One of the oldest and most important monasteries in Sikkim, meaning 'Perfect Sublime Lotus'. It offers stunning views of Kanchenjunga.",
		Founded:               "1705",
		Architecture:          "Three-story structure with traditional Sikkimese architecture",
		SpiritualSignificance: "Second most important monastery in Sikkim, head monastery of Nyingma sect",
		MainImage:             "https://images.unsplash.com/photo-1634308670152-17f7f1aa4e79",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1634308670152-17f7f1aa4e79",
			"https://images.unsplash.com/photo-1687074106203-f3dad46d9eb6",
			"https://images.pexels.com/photos/33262249/pexels-photo-33262249.jpeg",
		},
		PanoramicImages: []string{
			"https://images.unsplash.com/photo-1687074106203-f3dad46d9eb6",
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
		},
		Coordinates:        models.Coordinates{Lat: 27.3182, Lng: 88.2160},
		Highlights:         []string{"Zangdog Palri Model", "Ancient Manuscripts", "Kanchenjunga Views", "Ta-tshog Festival"},
		VisitingHours:      "7:00 AM - 5:00 PM",
		EntranceFee:        "₹20 for Indians, $5 for foreigners",
		Accessibility:      "Well-connected by road, short walk from parking",
		CulturalImportance: "Premier Nyingma monastery, showcases traditional Sikkimese Buddhism",
		Festivals: []models.Festival{
			{
				Name:         "Chaam Dance Festival",
				Date:         "January/February",
				Description:  "Sacred masked dance performances",
				Significance: "Drives away evil spirits and brings good fortune",
			},
			{
				Name:         "Saga Dawa",
				Date:         "May/June",
				Description:  "Celebrates Buddha's birth, enlightenment, and parinirvana",
				Significance: "Most sacred month in Buddhist calendar",
			},
		},
		TravelInfo: models.TravelInfo{
			BestTimeToVisit: "October to May for clear mountain views",
			NearestAirport:  "Bagdogra Airport (160 km)",
			Accommodation:   []string{"Hotel Garuda", "Pelling Tourist Lodge", "Norbu Ghang Resort"},
			LocalTransport:  "Shared jeeps from Pelling (2 km), taxis available",
			PermitsRequired: "Inner Line Permit for areas beyond Pelling",
			WeatherInfo:     "Cool climate, heavy snowfall in winter, clear views in autumn",
		},
	},
	{
		Name:                  "Enchey Monastery",
		Location:              "Gangtok, East Sikkim",
		District:              "East Sikkim",
		Altitude:              "1,800 meters",
		Tradition:             "Nyingma School of Tibetan Buddhism",
		Description:           "Located on a hilltop overlooking Gangtok, this monastery is believed to be blessed by guardian spirits and offers panoramic views of the city.",
		Founded:               "1909",
		Architecture:          "Traditional Tibetan style with Chinese architectural influences",
		SpiritualSignificance: "Important pilgrimage site, believed to be protected by tantric masters",
		MainImage:             "https://images.unsplash.com/photo-1543341724-c6f823532cac",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1543341724-c6f823532cac",
			"https://images.unsplash.com/photo-1755011310512-38cfb597241c",
			"https://images.pexels.com/photos/2409032/pexels-photo-2409032.jpeg",
		},
		PanoramicImages: []string{
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
			"https://images.unsplash.com/photo-1687074106203-f3dad46d9eb6",
		},
		Coordinates:        models.Coordinates{Lat: 27.3389, Lng: 88.6065},
		Highlights:         []string{"Prayer Hall", "Ancient Statues", "City Views", "Guardian Deities"},
		VisitingHours:      "6:00 AM - 6:00 PM",
		EntranceFee:        "Free",
		Accessibility:      "Easy road access from Gangtok city center",
		CulturalImportance: "Important urban monastery, center of Buddhist activities in Gangtok",
		Festivals: []models.Festival{
			{
				Name:         "Chaam Festival",
				Date:         "December/January",
				Description:  "Annual masked dance festival with elaborate costumes",
				Significance: "Celebrates victory of good over evil",
			},
			{
				Name:         "Losar",
				Date:         "February/March",
				Description:  "Tibetan New Year celebrations",
				Significance: "Beginning of new year in Tibetan calendar",
			},
		},
		TravelInfo: models.TravelInfo{
			BestTimeToVisit: "March to June, September to December",
			NearestAirport:  "Bagdogra Airport (124 km)",
			Accommodation:   []string{"Hotels in Gangtok city", "Mayfair Spa Resort", "Hotel Sonam Delek"},
			LocalTransport:  "Local taxis, walking distance from MG Road",
			PermitsRequired: "None for the monastery itself",
			WeatherInfo:     "Pleasant climate year-round, avoid monsoon season",
		},
	},
	{
		Name:                  "Tashiding Monastery",
		Location:              "Tashiding, West Sikkim",
		District:              "West Sikkim",
		Altitude:              "1,465 meters",
		Tradition:             "Nyingma School of Tibetan Buddhism",
		Description:           "Perched on a hilltop between Rathong and Rangeet rivers, this monastery is considered one of the most sacred in Sikkim.",
		Founded:               "1717",
		Architecture:          "Traditional architecture harmoniously blended with the natural landscape",
		SpiritualSignificance: "Most sacred monastery in Sikkim, blessed by Guru Padmasambhava",
		MainImage:             "https://images.unsplash.com/photo-1633538028057-838fd4e027a4",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1633538028057-838fd4e027a4",
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
			"https://images.pexels.com/photos/2408167/pexels-photo-2408167.jpeg",
		},
		PanoramicImages: []string{
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
			"https://images.unsplash.com/photo-1687074106203-f3dad46d9eb6",
		},
		Coordinates:        models.Coordinates{Lat: 27.3433, Lng: 88.2167},
		Highlights:         []string{"Sacred Chortens", "Holy Spring", "Bhumchu Festival", "River Confluence Views"},
		VisitingHours:      "6:00 AM - 6:00 PM",
		EntranceFee:        "Free",
		Accessibility:      "Moderate trek from road, scenic walking path",
		CulturalImportance: "Holiest site in Sikkim, significant for all Buddhist sects",
		Festivals: []models.Festival{
			{
				Name:         "Bhumchu Festival",
				Date:         "February/March",
				Description:  "Sacred water ceremony predicting the year ahead",
				Significance: "Most important festival, determines fortune for the year",
			},
			{
				Name:         "Kagyat Dance",
				Date:         "December",
				Description:  "Traditional masked dance performances",
				Significance: "Celebrates Buddha's teachings and drives away negativity",
			},
		},
		TravelInfo: models.TravelInfo{
			BestTimeToVisit: "October to May, especially during Bhumchu Festival",
			NearestAirport:  "Bagdogra Airport (140 km)",
			Accommodation:   []string{"Basic guest houses in Tashiding", "Hotels in nearby Geyzing"},
			LocalTransport:  "Shared jeeps from Geyzing, private taxis available",
			PermitsRequired: "Inner Line Permit for non-Indians",
			WeatherInfo:     "Pleasant climate, can be misty, best visibility in winter",
		},
	},
	{
		Name:                  "Do-drul Chorten",
		Location:              "Gangtok, East Sikkim",
		District:              "East Sikkim",
		Altitude:              "1,650 meters",
		Tradition:             "Nyingma School of Tibetan Buddhism",
		Description:           "The most important stupa in Sikkim, surrounded by 108 prayer wheels and containing sacred relics and mantras.",
		Founded:               "1945",
		Architecture:          "Traditional Tibetan stupa architecture with golden spire",
		SpiritualSignificance: "Important pilgrimage site, believed to subdue evil forces",
		MainImage:             "https://images.pexels.com/photos/33262249/pexels-photo-33262249.jpeg",
		GalleryImages: []string{
			"https://images.pexels.com/photos/33262249/pexels-photo-33262249.jpeg",
			"https://images.pexels.com/photos/19715251/pexels-photo-19715251.jpeg",
			"https://images.unsplash.com/photo-1566499175117-c78fabf20b7d",
		},
		PanoramicImages: []string{
			"https://images.pexels.com/photos/33262249/pexels-photo-33262249.jpeg",
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
		},
		Coordinates:        models.Coordinates{Lat: 27.3178, Lng: 88.6094},
		Highlights:         []string{"108 Prayer Wheels", "Golden Stupa", "Sacred Relics", "Prayer Flags"},
		VisitingHours:      "5:00 AM - 7:00 PM",
		EntranceFee:        "Free",
		Accessibility:      "Easy access from Gangtok, well-maintained paths",
		CulturalImportance: "Spiritual center of Gangtok, important meditation site",
		Festivals: []models.Festival{
			{
				Name:         "Buddha Jayanti",
				Date:         "May",
				Description:  "Celebrates Buddha's birth with prayers and offerings",
				Significance: "Special prayers and circumambulation of the stupa",
			},
			{
				Name:         "Tse Chu",
				Date:         "October",
				Description:  "Sacred day for accumulating merit through prayers",
				Significance: "Believed to multiply positive karma",
			},
		},
		TravelInfo: models.TravelInfo{
			BestTimeToVisit: "Year-round, especially early morning for prayers",
			NearestAirport:  "Bagdogra Airport (124 km)",
			Accommodation:   []string{"Hotels in Gangtok", "Nearby guest houses"},
			LocalTransport:  "Walking distance from city center, local taxis available",
			PermitsRequired: "None",
			WeatherInfo:     "Pleasant climate, covered walkways for rainy season",
		},
	},
	{
		Name:                  "Khecheopalri Monastery",
		Location:              "Khecheopalri, West Sikkim",
		District:              "West Sikkim",
		Altitude:              "1,700 meters",
		Tradition:             "Nyingma School of Tibetan Buddhism",
		Description:           "Located near the sacred Khecheopalri Lake (Wishing Lake), this monastery is surrounded by pristine forests and is considered highly sacred.",
		Founded:               "Unknown (ancient)",
		Architecture:          "Simple traditional architecture in harmony with nature",
		SpiritualSignificance: "Sacred lake monastery, fulfills devotees' wishes",
		MainImage:             "https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
		GalleryImages: []string{
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
			"https://images.unsplash.com/photo-1755011310512-38cfb597241c",
			"https://images.pexels.com/photos/2408167/pexels-photo-2408167.jpeg",
		},
		PanoramicImages: []string{
			"https://images.pexels.com/photos/6576294/pexels-photo-6576294.jpeg",
			"https://images.unsplash.com/photo-1687074106203-f3dad46d9eb6",
		},
		Coordinates:        models.Coordinates{Lat: 27.3167, Lng: 88.2000},
		Highlights:         []string{"Sacred Wishing Lake", "Forest Trek", "Bird Watching", "Prayer Flags"},
		VisitingHours:      "Dawn to Dusk",
		EntranceFee:        "Free",
		Accessibility:      "Moderate trek through forest, well-marked trail",
		CulturalImportance: "Sacred pilgrimage site, both Buddhist and Hindu significance",
		Festivals: []models.Festival{
			{
				Name:         "Maghe Sankranti",
				Date:         "January",
				Description:  "Sacred bathing and prayers at the lake",
				Significance: "Purification of sins and fulfillment of wishes",
			},
			{
				Name:         "Drupka Teshi",
				Date:         "July/August",
				Description:  "Celebrates Buddha's first teaching",
				Significance: "Special prayers and teachings at the monastery",
			},
		},
		TravelInfo: models.TravelInfo{
			BestTimeToVisit: "March to June, September to December",
			NearestAirport:  "Bagdogra Airport (150 km)",
			Accommodation:   []string{"Eco-lodges near lake", "Hotels in Pelling (30 km)"},
			LocalTransport:  "Jeeps from Pelling, then 30-minute forest walk",
			PermitsRequired: "Inner Line Permit for non-Indians",
			WeatherInfo:     "Cool and misty, leeches during monsoon, beautiful in winter",
		},
	},
}
