package l3_service

import (
	"context"
	"taxharvest/internal/domain"
	mock_repository "taxharvest/internal/repository/mocks"
	"taxharvest/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOpportunity(symbol string, loss, priority float64, washSaleRisk bool, replacements ...string) domain.HarvestOpportunity {
	l := decimal.NewFromFloat(loss)
	return domain.HarvestOpportunity{
		Symbol:             symbol,
		UnrealizedLoss:     l,
		CurrentValue:       decimal.NewFromInt(10000),
		TaxBenefit:         l.Mul(decimal.NewFromFloat(0.22)),
		WashSaleRisk:       washSaleRisk,
		ReplacementOptions: replacements,
		PriorityScore:      decimal.NewFromFloat(priority),
	}
}

func TestOptimize(t *testing.T) {
	ctx := context.Background()
	config := domain.DefaultTaxConfig()
	now := util.NewDate(2024, 6, 15)

	t.Run("orders actions by priority and partitions the timeline", func(t *testing.T) {
		handler := strategyServiceHandler{}

		strategy, err := handler.Optimize(ctx, OptimizeInput{
			Opportunities: []domain.HarvestOpportunity{
				newOpportunity("LOW", 500, 0.01, true, "REPL"),
				newOpportunity("HIGH", 2000, 0.05, false, "OTHER"),
			},
			Config: config,
			Now:    now,
		})
		require.NoError(t, err)
		require.Len(t, strategy.Actions, 2)
		require.Equal(t, "HIGH", strategy.Actions[0].Symbol)
		require.Equal(t, "LOW", strategy.Actions[1].Symbol)

		// compliant action executes immediately
		immediate := strategy.Actions[0]
		require.Equal(t, now, immediate.ExecutionDate)
		require.True(t, immediate.WashSaleCompliant)
		require.NotNil(t, immediate.RecommendedReplacement)
		require.Equal(t, "OTHER", *immediate.RecommendedReplacement)

		// risky action waits out the window
		delayed := strategy.Actions[1]
		require.Equal(t, util.NewDate(2024, 7, 16), delayed.ExecutionDate)
		require.False(t, delayed.WashSaleCompliant)

		require.Len(t, strategy.Timeline.ImmediateActions, 1)
		require.Len(t, strategy.Timeline.DelayedActions, 1)
		require.Equal(t, util.NewDate(2024, 7, 16), strategy.Timeline.EarliestCompletion)

		// (2000 + 500) * 0.22
		require.True(t, strategy.TotalEstimatedSavings.Equal(decimal.NewFromInt(550)),
			"got savings %s", strategy.TotalEstimatedSavings)
	})

	t.Run("completion is immediate when nothing is delayed", func(t *testing.T) {
		handler := strategyServiceHandler{}

		strategy, err := handler.Optimize(ctx, OptimizeInput{
			Opportunities: []domain.HarvestOpportunity{
				newOpportunity("AAPL", 500, 0.02, false),
			},
			Config: config,
			Now:    now,
		})
		require.NoError(t, err)
		require.Equal(t, now, strategy.Timeline.EarliestCompletion)
		require.Empty(t, strategy.Timeline.DelayedActions)
		require.Nil(t, strategy.Actions[0].RecommendedReplacement)
	})

	t.Run("explicit tax rate overrides the config rate", func(t *testing.T) {
		handler := strategyServiceHandler{}

		strategy, err := handler.Optimize(ctx, OptimizeInput{
			Opportunities: []domain.HarvestOpportunity{
				newOpportunity("AAPL", 1000, 0.02, false),
			},
			TaxRate: decimal.NewFromFloat(0.35),
			Config:  config,
			Now:     now,
		})
		require.NoError(t, err)
		require.True(t, strategy.TotalEstimatedSavings.Equal(decimal.NewFromInt(350)))
	})

	t.Run("commentary comes from the gpt repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := strategyServiceHandler{GptRepository: gptRepository}

		gptRepository.EXPECT().
			ExplainHarvestPlan(ctx, gomock.Any()).
			Return("sell AAPL, buy VGT, save money", nil)

		strategy, err := handler.Optimize(ctx, OptimizeInput{
			Opportunities: []domain.HarvestOpportunity{
				newOpportunity("AAPL", 1000, 0.02, false, "VGT"),
			},
			Config:         config,
			Now:            now,
			WithCommentary: true,
		})
		require.NoError(t, err)
		require.NotNil(t, strategy.Commentary)
		require.Equal(t, "sell AAPL, buy VGT, save money", *strategy.Commentary)
	})

	t.Run("commentary failure does not fail the strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := strategyServiceHandler{GptRepository: gptRepository}

		gptRepository.EXPECT().
			ExplainHarvestPlan(ctx, gomock.Any()).
			Return("", context.DeadlineExceeded)

		strategy, err := handler.Optimize(ctx, OptimizeInput{
			Opportunities: []domain.HarvestOpportunity{
				newOpportunity("AAPL", 1000, 0.02, false),
			},
			Config:         config,
			Now:            now,
			WithCommentary: true,
		})
		require.NoError(t, err)
		require.Nil(t, strategy.Commentary)
	})
}
