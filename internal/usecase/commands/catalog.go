package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

import (
	"context"

	"highway-booking/internal/domain/experience"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/usecase/shared"
)

type CatalogCommands interface {
	// ReplaceCatalog wipes bookings and experiences, then inserts exps in order.
	ReplaceCatalog(ctx context.Context, exps []*experience.Experience) ([]experience.ID, error)
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) ReplaceCatalog(ctx context.Context, exps []*experience.Experience) ([]experience.ID, error) {
	var ids []experience.ID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids = make([]experience.ID, 0, len(exps))

		if err := tx.Catalog().Reset(ctx, tx.DB()); err != nil {
			return err
		}
		for _, e := range exps {
			id, err := tx.Catalog().Create(ctx, tx.DB(), e)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ids, nil
}
