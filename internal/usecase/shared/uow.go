package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"highway-booking/internal/domain/booking"
	"highway-booking/internal/domain/experience"
	sqlc "highway-booking/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Slots() SlotRepository
	Catalog() CatalogRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ExperienceWithSlots(ctx context.Context, id experience.ID) (*ExperienceSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, time.Time, error)
}

type SlotRepository interface {
	TakeSeats(ctx context.Context, tx sqlc.DBTX, experienceID experience.ID, slotID experience.SlotID, seats int) error
}

type CatalogRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, e *experience.Experience) (experience.ID, error)
	Reset(ctx context.Context, tx sqlc.DBTX) error
}
