package queries

//go:generate mockgen -source=experience.go -destination=../../../tests/mock/queries/experience.go -package=queriesmock

import (
	"context"

	"highway-booking/internal/domain/experience"
	"highway-booking/internal/infra"
	"highway-booking/internal/pkg/errs"
)

var (
	ErrInvalidExperienceID = errs.New("invalid experience id")
	ErrExperienceNotFound  = errs.New("experience not found")
)

type ExperienceReadStore interface {
	FindAll(ctx context.Context) ([]*ExperienceSummaryView, error)
	FindByID(ctx context.Context, id int64) (*ExperienceView, error)
}

type ExperienceQueries interface {
	List(ctx context.Context) ([]*ExperienceSummaryView, error)
	GetByID(ctx context.Context, id int64) (*ExperienceView, error)
}

type experienceQueriesImpl struct {
	store ExperienceReadStore
}

func NewExperienceQueries(store ExperienceReadStore) ExperienceQueries {
	return &experienceQueriesImpl{store: store}
}

func (q *experienceQueriesImpl) List(ctx context.Context) ([]*ExperienceSummaryView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInternal)
	}
	return views, nil
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id int64) (*ExperienceView, error) {
	if _, err := experience.NewID(id); err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrInvalidExperienceID), errs.ErrInvalid)
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Mark(err, ErrExperienceNotFound), errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrInternal)
	}
	return view, nil
}
