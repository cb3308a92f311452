package dto

import (
	"time"

	"monastery-guide/internal/models"
)

// CreateMonasteryRequest carries a whole record; the identifier and creation
// timestamp are assigned server-side.
type CreateMonasteryRequest struct {
	Name                  string             `json:"name"`
	Location              string             `json:"location"`
	District              string             `json:"district"`
	Altitude              string             `json:"altitude"`
	Tradition             string             `json:"tradition"`
	Description           string             `json:"description"`
	Founded               string             `json:"founded"`
	Architecture          string             `json:"architecture"`
	SpiritualSignificance string             `json:"spiritual_significance"`
	MainImage             string             `json:"main_image"`
	GalleryImages         []string           `json:"gallery_images"`
	PanoramicImages       []string           `json:"panoramic_images"`
	Coordinates           models.Coordinates `json:"coordinates"`
	Highlights            []string           `json:"highlights"`
	VisitingHours         string             `json:"visiting_hours"`
	EntranceFee           string             `json:"entrance_fee"`
	Accessibility         string             `json:"accessibility"`
	CulturalImportance    string             `json:"cultural_importance"`
	Festivals             []models.Festival  `json:"festivals"`
	TravelInfo            models.TravelInfo  `json:"travel_info"`
}

func (r *CreateMonasteryRequest) ToModel() *models.Monastery {
	return &models.Monastery{
		Name:                  r.Name,
		Location:              r.Location,
		District:              r.District,
		Altitude:              r.Altitude,
		Tradition:             r.Tradition,
		Description:           r.Description,
		Founded:               r.Founded,
		Architecture:          r.Architecture,
		SpiritualSignificance: r.SpiritualSignificance,
		MainImage:             r.MainImage,
		GalleryImages:         r.GalleryImages,
		PanoramicImages:       r.PanoramicImages,
		Coordinates:           r.Coordinates,
		Highlights:            r.Highlights,
		VisitingHours:         r.VisitingHours,
		EntranceFee:           r.EntranceFee,
		Accessibility:         r.Accessibility,
		CulturalImportance:    r.CulturalImportance,
		Festivals:             r.Festivals,
		TravelInfo:            r.TravelInfo,
	}
}

type MonasteryResponse struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	Location              string             `json:"location"`
	District              string             `json:"district"`
	Altitude              string             `json:"altitude"`
	Tradition             string             `json:"tradition"`
	Description           string             `json:"description"`
	Founded               string             `json:"founded"`
	Architecture          string             `json:"architecture"`
	SpiritualSignificance string             `json:"spiritual_significance"`
	MainImage             string             `json:"main_image"`
	GalleryImages         []string           `json:"gallery_images"`
	PanoramicImages       []string           `json:"panoramic_images"`
	Coordinates           models.Coordinates `json:"coordinates"`
	Highlights            []string           `json:"highlights"`
	VisitingHours         string             `json:"visiting_hours"`
	EntranceFee           string             `json:"entrance_fee"`
	Accessibility         string             `json:"accessibility"`
	CulturalImportance    string             `json:"cultural_importance"`
	Festivals             []models.Festival  `json:"festivals"`
	TravelInfo            models.TravelInfo  `json:"travel_info"`
	CreatedAt             string             `json:"created_at"`
}

func NewMonasteryResponse(m *models.Monastery) MonasteryResponse {
	return MonasteryResponse{
		ID:                    m.ID,
		Name:                  m.Name,
		Location:              m.Location,
		District:              m.District,
		Altitude:              m.Altitude,
		Tradition:             m.Tradition,
		Description:           m.Description,
		Founded:               m.Founded,
		Architecture:          m.Architecture,
		SpiritualSignificance: m.SpiritualSignificance,
		MainImage:             m.MainImage,
		GalleryImages:         m.GalleryImages,
		PanoramicImages:       m.PanoramicImages,
		Coordinates:           m.Coordinates,
		Highlights:            m.Highlights,
		VisitingHours:         m.VisitingHours,
		EntranceFee:           m.EntranceFee,
		Accessibility:         m.Accessibility,
		CulturalImportance:    m.CulturalImportance,
		Festivals:             m.Festivals,
		TravelInfo:            m.TravelInfo,
		CreatedAt:             m.CreatedAt.Format(time.RFC3339),
	}
}

func NewMonasteryResponses(monasteries []*models.Monastery) []MonasteryResponse {
	responses := make([]MonasteryResponse, 0, len(monasteries))
	for _, m := range monasteries {
		responses = append(responses, NewMonasteryResponse(m))
	}
	return responses
}

type InitializeResponse struct {
	Message string `json:"message"`
}

type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

type TraditionsResponse struct {
	Traditions []string `json:"traditions"`
}

// FestivalEntry is a festival flattened out of its monastery, carrying the
// owner's name and location alongside the festival's own fields.
type FestivalEntry struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Significance string `json:"significance"`
	Monastery    string `json:"monastery"`
	Location     string `json:"location"`
}

type FestivalsResponse struct {
	Festivals []FestivalEntry `json:"festivals"`
}
