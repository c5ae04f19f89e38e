package converter

import (
	"highway-booking/internal/domain/booking"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	snap := b.Snapshot()
	return sqlc.CreateBookingParams{
		Name:             b.Customer().Name(),
		Email:            b.Customer().Email(),
		ExperienceID:     snap.ExperienceID.Int64(),
		ExperienceTitle:  snap.ExperienceTitle,
		SlotID:           snap.SlotID.String(),
		Date:             pgconv.DateToPgtype(snap.Date.Time()),
		Timeslot:         snap.Timeslot,
		PeopleCount:      int32(b.PeopleCount().Int()), // #nosec G115 -- bounded to 1..10
		Amount:           b.Amount(),
		Discount:         b.Discount(),
		FinalAmount:      b.FinalAmount(),
		PromoCodeApplied: pgconv.StringPtrToPgtype(b.PromoCode()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
	}
}
