//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"highway-booking/internal/infra"
	"highway-booking/internal/infra/repository"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/tests/common/builder"
	repositorymock "highway-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					Return(sqlc.CreateBookingRow{ID: 42, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}}, nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					Return(sqlc.CreateBookingRow{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: check constraint violated",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				chk := &pgconn.PgError{Code: "23514", Message: "new row violates check constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, chk)
			},
			expectedError: true,
			expectKind:    infra.KindCheckViolated,
		},
		{
			name: "error: experience foreign key violated",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			domainBooking, err := builder.NewBookingBuilder().
				BuildDomain("Sunrise Hot Air Balloon Ride", createdAt, "05:00 - 07:00", "200", "0", "200")
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			id, at, actualError := repo.Create(ctx, mockDB, domainBooking)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Zero(t, id)
				assert.True(t, at.IsZero())
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, int64(42), id)
				assert.Equal(t, createdAt, at)
			}
		})
	}
}

func TestBookingRepository_Create_Params(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	t.Run("snapshot and amounts are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		b, err := builder.NewBookingBuilder().WithPromoCode("SAVE10").
			BuildDomain("Sunrise Hot Air Balloon Ride", date, "05:00 - 07:00", "200", "20", "180")
		require.NoError(t, err)

		mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error) {
				assert.Equal(t, "Jane Traveller", arg.Name)
				assert.Equal(t, "jane@example.com", arg.Email)
				assert.Equal(t, int64(1), arg.ExperienceID)
				assert.Equal(t, "Sunrise Hot Air Balloon Ride", arg.ExperienceTitle)
				assert.Equal(t, "slot-1", arg.SlotID)
				assert.Equal(t, date, arg.Date.Time)
				assert.Equal(t, "05:00 - 07:00", arg.Timeslot)
				assert.Equal(t, int32(2), arg.PeopleCount)
				assert.True(t, decimal.NewFromInt(200).Equal(arg.Amount))
				assert.True(t, decimal.NewFromInt(20).Equal(arg.Discount))
				assert.True(t, decimal.NewFromInt(180).Equal(arg.FinalAmount))
				assert.True(t, arg.PromoCodeApplied.Valid)
				assert.Equal(t, "SAVE10", arg.PromoCodeApplied.String)
				return sqlc.CreateBookingRow{ID: 1, CreatedAt: pgtype.Timestamptz{Time: date, Valid: true}}, nil
			})

		_, _, err = repo.Create(ctx, mockDB, b)
		require.NoError(t, err)
	})

	t.Run("promo code is NULL when none applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		b, err := builder.NewBookingBuilder().
			BuildDomain("Sunrise Hot Air Balloon Ride", date, "05:00 - 07:00", "200", "0", "200")
		require.NoError(t, err)

		mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error) {
				assert.False(t, arg.PromoCodeApplied.Valid)
				return sqlc.CreateBookingRow{ID: 1, CreatedAt: pgtype.Timestamptz{Time: date, Valid: true}}, nil
			})

		_, _, err = repo.Create(ctx, mockDB, b)
		require.NoError(t, err)
	})
}

// mockDBTX satisfies sqlc.DBTX; the generated query mocks never touch it.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
