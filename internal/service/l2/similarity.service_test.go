package l2_service

import (
	"context"
	"fmt"
	"taxharvest/internal/db/models/postgres/public/model"
	"taxharvest/internal/domain"
	mock_repository "taxharvest/internal/repository/mocks"
	"testing"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssess(t *testing.T) {
	ctx := context.Background()

	newHandler := func(ctrl *gomock.Controller) (SimilarityProvider, *mock_repository.MockSimilarityRepository, *mock_repository.MockAdjustedPriceRepository) {
		similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)
		handler := NewSimilarityService(similarityRepository, priceRepository, domain.DefaultTaxConfig())
		return handler, similarityRepository, priceRepository
	}

	t.Run("same symbol scores one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _ := newHandler(ctrl)

		assessment, err := handler.Assess(ctx, "VTI", "VTI")
		require.NoError(t, err)
		require.True(t, assessment.Score.Equal(decimal.NewFromInt(1)))
		require.True(t, assessment.SubstantiallyIdentical)
	})

	t.Run("curated pair wins over correlation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, similarityRepository, _ := newHandler(ctrl)

		similarityRepository.EXPECT().
			GetPair("VTI", "ITOT").
			Return(&model.AssetSimilarity{
				Symbol:          "VTI",
				SimilarSymbol:   "ITOT",
				SimilarityScore: decimal.NewFromFloat(0.97),
			}, nil)

		assessment, err := handler.Assess(ctx, "VTI", "ITOT")
		require.NoError(t, err)
		require.True(t, assessment.Score.Equal(decimal.NewFromFloat(0.97)))
		require.True(t, assessment.SubstantiallyIdentical)
	})

	t.Run("score at the threshold is not substantially identical", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, similarityRepository, _ := newHandler(ctrl)

		similarityRepository.EXPECT().
			GetPair("VTI", "SCHB").
			Return(&model.AssetSimilarity{
				Symbol:          "VTI",
				SimilarSymbol:   "SCHB",
				SimilarityScore: decimal.NewFromFloat(0.9),
			}, nil)

		assessment, err := handler.Assess(ctx, "VTI", "SCHB")
		require.NoError(t, err)
		require.False(t, assessment.SubstantiallyIdentical)
	})

	t.Run("missing curated row falls back to correlation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, similarityRepository, priceRepository := newHandler(ctrl)

		similarityRepository.EXPECT().
			GetPair("AAA", "BBB").
			Return(nil, qrm.ErrNoRows)

		// perfectly correlated histories
		pricesA := []model.AdjustedPrice{
			{Symbol: "AAA", Price: decimal.NewFromInt(100)},
			{Symbol: "AAA", Price: decimal.NewFromInt(110)},
			{Symbol: "AAA", Price: decimal.NewFromInt(99)},
			{Symbol: "AAA", Price: decimal.NewFromInt(130)},
		}
		pricesB := []model.AdjustedPrice{
			{Symbol: "BBB", Price: decimal.NewFromInt(200)},
			{Symbol: "BBB", Price: decimal.NewFromInt(220)},
			{Symbol: "BBB", Price: decimal.NewFromInt(198)},
			{Symbol: "BBB", Price: decimal.NewFromInt(260)},
		}
		priceRepository.EXPECT().
			List("AAA", gomock.Any(), gomock.Any()).
			Return(pricesA, nil)
		priceRepository.EXPECT().
			List("BBB", gomock.Any(), gomock.Any()).
			Return(pricesB, nil)

		assessment, err := handler.Assess(ctx, "AAA", "BBB")
		require.NoError(t, err)
		require.InDelta(t, 1.0, assessment.Score.InexactFloat64(), 0.001)
		require.True(t, assessment.SubstantiallyIdentical)
	})

	t.Run("failed fallback degrades to dissimilar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, similarityRepository, priceRepository := newHandler(ctrl)

		similarityRepository.EXPECT().
			GetPair("AAA", "BBB").
			Return(nil, qrm.ErrNoRows)
		priceRepository.EXPECT().
			List("AAA", gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("db unavailable"))

		assessment, err := handler.Assess(ctx, "AAA", "BBB")
		require.NoError(t, err)
		require.True(t, assessment.Score.IsZero())
		require.False(t, assessment.SubstantiallyIdentical)
	})
}

func TestSimilarAssets(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	similarityRepository := mock_repository.NewMockSimilarityRepository(ctrl)
	priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)
	handler := NewSimilarityService(similarityRepository, priceRepository, domain.DefaultTaxConfig())

	similarityRepository.EXPECT().
		ListForSymbol("VTI").
		Return([]model.AssetSimilarity{
			{Symbol: "VTI", SimilarSymbol: "ITOT", Rank: 1},
			{Symbol: "VTI", SimilarSymbol: "SCHB", Rank: 2},
		}, nil)

	assets, err := handler.SimilarAssets(ctx, "VTI")
	require.NoError(t, err)
	require.Equal(t, []string{"ITOT", "SCHB"}, assets)
}
