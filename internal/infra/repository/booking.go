package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"
	"time"

	"highway-booking/internal/domain/booking"
	"highway-booking/internal/infra"
	"highway-booking/internal/infra/repository/converter"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error)
}

// BookingRepository is append-only: bookings are never updated or deleted.
type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, time.Time, error) {
	params := converter.BookingToCreateParams(b)

	row, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return 0, time.Time{}, infra.WrapRepoErr("failed to create booking", err)
	}

	return row.ID, pgconv.TimeFromPgtype(row.CreatedAt), nil
}
