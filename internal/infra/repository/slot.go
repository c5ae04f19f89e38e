package repository

//go:generate mockgen -source=slot.go -destination=../../../tests/mock/repository/slot.go -package=repositorymock

import (
	"context"

	"highway-booking/internal/domain/experience"
	"highway-booking/internal/infra"
	sqlc "highway-booking/internal/infra/sqlc/generated"
)

type SlotWriteQueries interface {
	DecrementSlotCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementSlotCapacityParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// TakeSeats decrements capacity in a single conditional UPDATE. The row lock it
// takes serialises concurrent bookings of the same slot until the tx ends.
// Zero affected rows is reported as KindConflict.
func (r *SlotRepository) TakeSeats(ctx context.Context, tx sqlc.DBTX, experienceID experience.ID, slotID experience.SlotID, seats int) error {
	params := sqlc.DecrementSlotCapacityParams{
		Seats:        int32(seats), // #nosec G115 -- seats is bounded by PeopleCount
		ExperienceID: experienceID.Int64(),
		SlotID:       slotID.String(),
	}

	affected, err := r.queries.DecrementSlotCapacity(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement slot capacity", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("slot sold out or insufficient seats", nil, infra.KindConflict)
	}
	return nil
}
