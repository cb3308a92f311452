package models

import "time"

// Festival is one festival celebrated at a monastery. Festivals are stored
// inline with their monastery as a jsonb column, never addressed on their own.
type Festival struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Significance string `json:"significance"`
}

// TravelInfo holds the practical travel details for one monastery.
type TravelInfo struct {
	BestTimeToVisit string   `json:"best_time_to_visit"`
	NearestAirport  string   `json:"nearest_airport"`
	Accommodation   []string `json:"accommodation"`
	LocalTransport  string   `json:"local_transport"`
	PermitsRequired string   `json:"permits_required"`
	WeatherInfo     string   `json:"weather_info"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Monastery is a descriptive heritage record. Records are whole-object:
// created once (by seed or API) and never partially updated.
type Monastery struct {
	ID                    string      `db:"id"`
	Name                  string      `db:"name"`
	Location              string      `db:"location"`
	District              string      `db:"district"`
	Altitude              string      `db:"altitude"`
	Tradition             string      `db:"tradition"`
	Description           string      `db:"description"`
	Founded               string      `db:"founded"`
	Architecture          string      `db:"architecture"`
	SpiritualSignificance string      `db:"spiritual_significance"`
	MainImage             string      `db:"main_image"`
	GalleryImages         []string    `db:"gallery_images"`
	PanoramicImages       []string    `db:"panoramic_images"`
	Coordinates           Coordinates `db:"coordinates"`
	Highlights            []string    `db:"highlights"`
	VisitingHours         string      `db:"visiting_hours"`
	EntranceFee           string      `db:"entrance_fee"`
	Accessibility         string      `db:"accessibility"`
	CulturalImportance    string      `db:"cultural_importance"`
	Festivals             []Festival  `db:"festivals"`
	TravelInfo            TravelInfo  `db:"travel_info"`
	CreatedAt             time.Time   `db:"created_at"`
}
