package catalog

// TravelGuide is the fixed, non-personalized travel document served at
// /api/travel-guide. It is static content, not derived from the store.
type TravelGuide struct {
	Permits       PermitGuide        `json:"permits"`
	BestTime      SeasonGuide        `json:"best_time"`
	GettingThere  TransportGuide     `json:"getting_there"`
	Accommodation AccommodationGuide `json:"accommodation"`
	ImportantTips []string           `json:"important_tips"`
}

type PermitGuide struct {
	InnerLinePermit string `json:"inner_line_permit"`
	HowToGet        string `json:"how_to_get"`
	Duration        string `json:"duration"`
	Documents       string `json:"documents"`
}

type SeasonGuide struct {
	PeakSeason   string `json:"peak_season"`
	Monsoon      string `json:"monsoon"`
	Winter       string `json:"winter"`
	FestivalTime string `json:"festival_time"`
}

type TransportGuide struct {
	NearestAirport string `json:"nearest_airport"`
	NearestRailway string `json:"nearest_railway"`
	RoadAccess     string `json:"road_access"`
	LocalTransport string `json:"local_transport"`
}

type AccommodationGuide struct {
	Types          []string `json:"types"`
	BookingTips    string   `json:"booking_tips"`
	MonasteryStays string   `json:"monastery_stays"`
}

// SikkimTravelGuide returns the travel guide document.
func SikkimTravelGuide() TravelGuide {
	return TravelGuide{
		Permits: PermitGuide{
			InnerLinePermit: "Required for non-Indians visiting most areas",
			HowToGet:        "Online application or at checkpoints",
			Duration:        "15-30 days",
			Documents:       "Valid ID proof, passport photos",
		},
		BestTime: SeasonGuide{
			PeakSeason:   "March to June, September to December",
			Monsoon:      "July-August (avoid due to landslides)",
			Winter:       "December-February (cold but clear views)",
			FestivalTime: "February-March for major festivals",
		},
		GettingThere: TransportGuide{
			NearestAirport: "Bagdogra Airport (West Bengal)",
			NearestRailway: "New Jalpaiguri (NJP)",
			RoadAccess:     "NH10 from West Bengal",
			LocalTransport: "Shared jeeps, private taxis, government buses",
		},
		Accommodation: AccommodationGuide{
			Types:          []string{"Luxury hotels", "Budget hotels", "Guest houses", "Homestays"},
			BookingTips:    "Book in advance during peak season",
			MonasteryStays: "Some monasteries offer basic accommodation",
		},
		ImportantTips: []string{
			"Carry warm clothes even in summer",
			"Respect photography restrictions in monasteries",
			"Remove shoes before entering prayer halls",
			"Don't point feet towards Buddha statues",
			"Carry cash as ATMs are limited in remote areas",
			"Stay hydrated at high altitudes",
		},
	}
}
