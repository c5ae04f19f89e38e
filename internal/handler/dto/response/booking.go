package response

import (
	"highway-booking/internal/domain/experience"
	"highway-booking/internal/usecase/commands"
)

type BookingResponse struct {
	BookingID       int64   `json:"bookingId"`
	FinalAmount     float64 `json:"finalAmount"`
	ExperienceTitle string  `json:"experienceTitle"`
	Date            string  `json:"date"`
	Timeslot        string  `json:"timeslot"`
}

func FromReserveResult(r *commands.ReserveResult) BookingResponse {
	return BookingResponse{
		BookingID:       r.BookingID,
		FinalAmount:     r.FinalAmount.InexactFloat64(),
		ExperienceTitle: r.ExperienceTitle,
		Date:            r.Date.Format(experience.DateLayout),
		Timeslot:        r.Timeslot,
	}
}
