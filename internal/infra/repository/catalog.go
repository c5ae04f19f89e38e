package repository

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/repository/catalog.go -package=repositorymock

import (
	"context"

	"highway-booking/internal/domain/experience"
	"highway-booking/internal/infra"
	"highway-booking/internal/infra/repository/converter"
	sqlc "highway-booking/internal/infra/sqlc/generated"
)

type CatalogWriteQueries interface {
	CreateExperience(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExperienceParams) (int64, error)
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) error
	DeleteAllBookings(ctx context.Context, db sqlc.DBTX) error
	DeleteAllExperiences(ctx context.Context, db sqlc.DBTX) error
}

// CatalogRepository writes experiences and their slots. Only the seed command uses it.
type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) Create(ctx context.Context, tx sqlc.DBTX, e *experience.Experience) (experience.ID, error) {
	id, err := r.queries.CreateExperience(ctx, tx, converter.ExperienceToCreateParams(e))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create experience", err)
	}

	for _, s := range e.Slots() {
		if err := r.queries.CreateSlot(ctx, tx, converter.SlotToCreateParams(id, s)); err != nil {
			return 0, infra.WrapRepoErr("failed to create slot", err)
		}
	}

	return experience.ID(id), nil
}

// Reset removes bookings first; slots follow experiences via ON DELETE CASCADE.
func (r *CatalogRepository) Reset(ctx context.Context, tx sqlc.DBTX) error {
	if err := r.queries.DeleteAllBookings(ctx, tx); err != nil {
		return infra.WrapRepoErr("failed to delete bookings", err)
	}
	if err := r.queries.DeleteAllExperiences(ctx, tx); err != nil {
		return infra.WrapRepoErr("failed to delete experiences", err)
	}
	return nil
}
