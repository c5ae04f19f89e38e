//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"highway-booking/internal/infra"
	"highway-booking/internal/pkg/errs"
	"highway-booking/internal/usecase/queries"
	"highway-booking/tests/common/builder"
	queriesmock "highway-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExperienceQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockExperienceReadStore(ctrl)
		views := []*queries.ExperienceSummaryView{builder.NewExperienceBuilder().BuildSummaryView()}
		store.EXPECT().FindAll(ctx).Return(views, nil)

		actual, err := queries.NewExperienceQueries(store).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, views, actual)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockExperienceReadStore(ctrl)
		store.EXPECT().FindAll(ctx).Return(nil, infra.WrapRepoErr("failed to list experiences", errors.New("timeout")))

		actual, err := queries.NewExperienceQueries(store).List(ctx)
		require.Error(t, err)
		assert.Nil(t, actual)
		assert.True(t, errs.Is(err, errs.ErrInternal))
	})
}

func TestExperienceQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		id        int64
		setupMock func(*queriesmock.MockExperienceReadStore)
		wantErr   error
		wantCateg error
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(m *queriesmock.MockExperienceReadStore) {
				m.EXPECT().FindByID(ctx, int64(1)).Return(builder.NewExperienceBuilder().BuildView(), nil)
			},
		},
		{
			name:      "zero id is rejected before the store",
			id:        0,
			setupMock: func(m *queriesmock.MockExperienceReadStore) {},
			wantErr:   queries.ErrInvalidExperienceID,
			wantCateg: errs.ErrInvalid,
		},
		{
			name:      "negative id is rejected before the store",
			id:        -5,
			setupMock: func(m *queriesmock.MockExperienceReadStore) {},
			wantErr:   queries.ErrInvalidExperienceID,
			wantCateg: errs.ErrInvalid,
		},
		{
			name: "not found",
			id:   999,
			setupMock: func(m *queriesmock.MockExperienceReadStore) {
				m.EXPECT().FindByID(ctx, int64(999)).
					Return(nil, infra.WrapRepoErr("experience not found", errors.New("no rows"), infra.KindNotFound))
			},
			wantErr:   queries.ErrExperienceNotFound,
			wantCateg: errs.ErrNotFound,
		},
		{
			name: "store failure",
			id:   1,
			setupMock: func(m *queriesmock.MockExperienceReadStore) {
				m.EXPECT().FindByID(ctx, int64(1)).
					Return(nil, infra.WrapRepoErr("failed to find experience by ID", errors.New("timeout")))
			},
			wantCateg: errs.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockExperienceReadStore(ctrl)
			tt.setupMock(store)

			actual, err := queries.NewExperienceQueries(store).GetByID(ctx, tt.id)

			if tt.wantCateg == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				assert.Len(t, actual.Slots, 2)
				return
			}
			require.Error(t, err)
			assert.Nil(t, actual)
			assert.True(t, errs.Is(err, tt.wantCateg))
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
			}
		})
	}
}
