//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"highway-booking/internal/domain/experience"
	"highway-booking/internal/infra"
	"highway-booking/internal/infra/repository"
	sqlc "highway-booking/internal/infra/sqlc/generated"
	"highway-booking/tests/common/builder"
	repositorymock "highway-booking/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: experience and slots inserted in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCatalogRepository(mockQueries, mockDB)

		exp := builder.NewExperienceBuilder().MustBuildDomain()

		var slotIDs []string
		gomock.InOrder(
			mockQueries.EXPECT().CreateExperience(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateExperienceParams) (int64, error) {
					assert.Equal(t, "Sunrise Hot Air Balloon Ride", arg.Title)
					assert.Equal(t, "https://example.com/balloon.jpg", arg.ImageUrl)
					assert.Equal(t, int32(312), arg.ReviewsCount)
					return 9, nil
				}),
			mockQueries.EXPECT().CreateSlot(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSlotParams) error {
					assert.Equal(t, int64(9), arg.ExperienceID)
					slotIDs = append(slotIDs, arg.SlotID)
					return nil
				}).Times(2),
		)

		id, err := repo.Create(ctx, mockDB, exp)
		require.NoError(t, err)
		assert.Equal(t, experience.ID(9), id)
		assert.Equal(t, []string{"slot-1", "slot-2"}, slotIDs)
	})

	t.Run("error: experience insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCatalogRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateExperience(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("boom"))

		id, err := repo.Create(ctx, mockDB, builder.NewExperienceBuilder().MustBuildDomain())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, id)
	})

	t.Run("error: slot insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCatalogRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateExperience(ctx, mockDB, gomock.Any()).Return(int64(3), nil)
		mockQueries.EXPECT().CreateSlot(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))

		_, err := repo.Create(ctx, mockDB, builder.NewExperienceBuilder().MustBuildDomain())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogRepository_Reset(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCatalogWriteQueries, sqlc.DBTX)
		expectedError bool
	}{
		{
			name: "success: bookings deleted before experiences",
			setupMock: func(mock *repositorymock.MockCatalogWriteQueries, tx sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().DeleteAllBookings(ctx, tx).Return(nil),
					mock.EXPECT().DeleteAllExperiences(ctx, tx).Return(nil),
				)
			},
		},
		{
			name: "error: bookings delete fails",
			setupMock: func(mock *repositorymock.MockCatalogWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteAllBookings(ctx, tx).Return(errors.New("boom"))
			},
			expectedError: true,
		},
		{
			name: "error: experiences delete fails",
			setupMock: func(mock *repositorymock.MockCatalogWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().DeleteAllBookings(ctx, tx).Return(nil)
				mock.EXPECT().DeleteAllExperiences(ctx, tx).Return(errors.New("boom"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCatalogWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCatalogRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			err := repo.Reset(ctx, mockDB)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
