package response

import (
	"highway-booking/internal/domain/experience"
	"highway-booking/internal/usecase/queries"
)

// Catalog payloads keep the snake_case column names clients already consume.
type ExperienceSummaryResponse struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"price_per_person"`
	ImageURL       string  `json:"image_url"`
	Rating         float64 `json:"rating"`
	ReviewsCount   int     `json:"reviews_count"`
	TotalCapacity  int     `json:"total_capacity"`
}

type SlotResponse struct {
	ID       int64  `json:"id"`
	SlotID   string `json:"slot_id"`
	Date     string `json:"date"`
	Timeslot string `json:"timeslot"`
	Capacity int    `json:"capacity"`
}

type ExperienceResponse struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Location       string         `json:"location"`
	Description    string         `json:"description"`
	PricePerPerson float64        `json:"price_per_person"`
	ImageURL       string         `json:"image_url"`
	Rating         float64        `json:"rating"`
	ReviewsCount   int            `json:"reviews_count"`
	Slots          []SlotResponse `json:"slots"`
}

func FromExperienceSummaryViews(views []*queries.ExperienceSummaryView) []ExperienceSummaryResponse {
	out := make([]ExperienceSummaryResponse, len(views))
	for i, v := range views {
		out[i] = ExperienceSummaryResponse{
			ID:             v.ID,
			Title:          v.Title,
			Location:       v.Location,
			Description:    v.Description,
			PricePerPerson: v.PricePerPerson.InexactFloat64(),
			ImageURL:       v.ImageURL,
			Rating:         v.Rating.InexactFloat64(),
			ReviewsCount:   v.ReviewsCount,
			TotalCapacity:  v.TotalCapacity,
		}
	}
	return out
}

func FromExperienceView(v *queries.ExperienceView) ExperienceResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{
			ID:       s.ID,
			SlotID:   s.SlotID,
			Date:     s.Date.Format(experience.DateLayout),
			Timeslot: s.Timeslot,
			Capacity: s.Capacity,
		}
	}
	return ExperienceResponse{
		ID:             v.ID,
		Title:          v.Title,
		Location:       v.Location,
		Description:    v.Description,
		PricePerPerson: v.PricePerPerson.InexactFloat64(),
		ImageURL:       v.ImageURL,
		Rating:         v.Rating.InexactFloat64(),
		ReviewsCount:   v.ReviewsCount,
		Slots:          slots,
	}
}
