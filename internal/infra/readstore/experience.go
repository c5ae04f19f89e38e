package readstore

//go:generate mockgen -source=experience.go -destination=../../../tests/mock/readstore/experience.go -package=readstoremock

import (
	"context"

	"highway-booking/internal/infra"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/internal/pkg/pgconv"
	"highway-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type ExperienceViewQueries interface {
	ListExperienceSummaries(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListExperienceSummariesRow, error)
	GetExperienceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Experiences, error)
	ListSlotsByExperienceID(ctx context.Context, db sqlc.DBTX, experienceID int64) ([]sqlc.Slots, error)
}

type ExperienceReadStore struct {
	queries ExperienceViewQueries
	db      sqlc.DBTX
}

func NewExperienceReadStore(queries ExperienceViewQueries, db sqlc.DBTX) *ExperienceReadStore {
	return &ExperienceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExperienceReadStore) FindAll(ctx context.Context) ([]*queries.ExperienceSummaryView, error) {
	rows, err := r.queries.ListExperienceSummaries(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experiences", err)
	}

	result := make([]*queries.ExperienceSummaryView, 0, len(rows))
	if err := copier.Copy(&result, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map experience summaries", err)
	}
	return result, nil
}

// FindByID loads the experience row and its slots. On a pool the two queries run
// concurrently; a transaction handle only allows one query at a time.
func (r *ExperienceReadStore) FindByID(ctx context.Context, id int64) (*queries.ExperienceView, error) {
	var (
		row   sqlc.Experiences
		slots []sqlc.Slots
	)

	getRow := func(ctx context.Context) error {
		var err error
		row, err = r.queries.GetExperienceByID(ctx, r.db, id)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to find experience by ID", err)
		}
		return nil
	}
	getSlots := func(ctx context.Context) error {
		var err error
		slots, err = r.queries.ListSlotsByExperienceID(ctx, r.db, id)
		if err != nil {
			return infra.WrapRepoErr("failed to list slots", err)
		}
		return nil
	}

	if _, pooled := r.db.(*pgxpool.Pool); pooled {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return getRow(gctx) })
		g.Go(func() error { return getSlots(gctx) })
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		if err := getRow(ctx); err != nil {
			return nil, err
		}
		if err := getSlots(ctx); err != nil {
			return nil, err
		}
	}

	return toExperienceView(row, slots)
}

func toExperienceView(row sqlc.Experiences, slots []sqlc.Slots) (*queries.ExperienceView, error) {
	view := &queries.ExperienceView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map experience", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(row.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(row.UpdatedAt)

	view.Slots = make([]queries.SlotView, len(slots))
	for i, s := range slots {
		view.Slots[i] = queries.SlotView{
			ID:       s.ID,
			SlotID:   s.SlotID,
			Date:     pgconv.DateFromPgtype(s.Date),
			Timeslot: s.Timeslot,
			Capacity: int(s.Capacity),
		}
	}
	return view, nil
}
