package converter

import (
	"highway-booking/internal/domain/experience"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/internal/pkg/pgconv"
)

func ExperienceToCreateParams(e *experience.Experience) sqlc.CreateExperienceParams {
	return sqlc.CreateExperienceParams{
		Title:          e.Title(),
		Location:       e.Location(),
		Description:    e.Description(),
		PricePerPerson: e.PricePerPerson(),
		ImageUrl:       e.ImageURL(),
		Rating:         e.Rating(),
		ReviewsCount:   int32(e.ReviewsCount()), // #nosec G115 -- review counts fit in int32
	}
}

func SlotToCreateParams(experienceID int64, s experience.Slot) sqlc.CreateSlotParams {
	return sqlc.CreateSlotParams{
		ExperienceID: experienceID,
		SlotID:       s.SlotID().String(),
		Date:         pgconv.DateToPgtype(s.Date().Time()),
		Timeslot:     s.Timeslot(),
		Capacity:     int32(s.Capacity().Int()), // #nosec G115 -- capacity is a small non-negative int
	}
}
