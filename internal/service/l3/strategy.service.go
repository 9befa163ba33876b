package l3_service

import (
	"context"
	"encoding/json"
	"sort"
	"taxharvest/internal/domain"
	"taxharvest/internal/logger"
	"taxharvest/internal/repository"
	"taxharvest/internal/util"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StrategyService interface {
	Optimize(ctx context.Context, input OptimizeInput) (*domain.HarvestStrategy, error)
}

type OptimizeInput struct {
	// Opportunities to sequence. When nil, they are identified first.
	Opportunities []domain.HarvestOpportunity
	AccountID     *uuid.UUID
	TaxRate       decimal.Decimal
	Config        domain.TaxConfig
	// Now defaults to current UTC time.
	Now time.Time
	// WithCommentary requests a natural-language plan summary, when a
	// GPT repository is wired.
	WithCommentary bool
}

type strategyServiceHandler struct {
	HarvestService HarvestService
	// GptRepository may be nil; commentary is then skipped.
	GptRepository repository.GptRepository
}

func NewStrategyService(harvestService HarvestService, gptRepository repository.GptRepository) StrategyService {
	return strategyServiceHandler{
		HarvestService: harvestService,
		GptRepository:  gptRepository,
	}
}

func (h strategyServiceHandler) Optimize(ctx context.Context, input OptimizeInput) (*domain.HarvestStrategy, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	taxRate := input.TaxRate
	if taxRate.IsZero() {
		taxRate = input.Config.MarginalTaxRate
	}

	opportunities := input.Opportunities
	if opportunities == nil {
		report, err := h.HarvestService.IdentifyOpportunities(ctx, IdentifyInput{
			AccountID: input.AccountID,
			Config:    input.Config,
			Now:       now,
		})
		if err != nil {
			return nil, err
		}
		opportunities = report.Opportunities
	}

	ordered := append([]domain.HarvestOpportunity{}, opportunities...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PriorityScore.GreaterThan(ordered[j].PriorityScore)
	})

	delayedDate := now.AddDate(0, 0, input.Config.WashSaleDays+1)
	strategy := &domain.HarvestStrategy{
		Actions: []domain.HarvestAction{},
		Timeline: domain.ExecutionTimeline{
			ImmediateActions:   []domain.HarvestAction{},
			DelayedActions:     []domain.HarvestAction{},
			EarliestCompletion: now,
		},
	}

	for _, opportunity := range ordered {
		action := domain.HarvestAction{
			Symbol:              opportunity.Symbol,
			UnrealizedLoss:      opportunity.UnrealizedLoss,
			EstimatedTaxSavings: opportunity.UnrealizedLoss.Mul(taxRate),
			WashSaleCompliant:   !opportunity.WashSaleRisk,
			PriorityScore:       opportunity.PriorityScore,
			ExecutionDate:       now,
		}
		if len(opportunity.ReplacementOptions) > 0 {
			action.RecommendedReplacement = util.StringPointer(opportunity.ReplacementOptions[0])
		}
		if opportunity.WashSaleRisk {
			action.ExecutionDate = delayedDate
			strategy.Timeline.DelayedActions = append(strategy.Timeline.DelayedActions, action)
		} else {
			strategy.Timeline.ImmediateActions = append(strategy.Timeline.ImmediateActions, action)
		}

		strategy.Actions = append(strategy.Actions, action)
		strategy.TotalEstimatedSavings = strategy.TotalEstimatedSavings.Add(action.EstimatedTaxSavings)
	}

	if len(strategy.Timeline.DelayedActions) > 0 {
		strategy.Timeline.EarliestCompletion = delayedDate
	}

	if input.WithCommentary && h.GptRepository != nil {
		commentary, err := h.commentary(ctx, strategy)
		if err != nil {
			// commentary is best-effort; the strategy stands on its own
			logger.FromContext(ctx).Warnf("failed to generate strategy commentary: %v", err)
		} else {
			strategy.Commentary = util.StringPointer(commentary)
		}
	}

	return strategy, nil
}

func (h strategyServiceHandler) commentary(ctx context.Context, strategy *domain.HarvestStrategy) (string, error) {
	summary, err := json.Marshal(strategy)
	if err != nil {
		return "", err
	}
	return h.GptRepository.ExplainHarvestPlan(ctx, string(summary))
}
