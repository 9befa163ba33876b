package l3_service

import (
	"context"
	"fmt"
	"sort"
	"taxharvest/internal/domain"
	"taxharvest/internal/logger"
	"taxharvest/internal/repository"
	l1_service "taxharvest/internal/service/l1"
	l2_service "taxharvest/internal/service/l2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HarvestService interface {
	// IdentifyOpportunities loads positions and recent transactions and
	// runs Identify over them.
	IdentifyOpportunities(ctx context.Context, input IdentifyInput) (*domain.HarvestReport, error)
	// Identify is the pure scan: qualify positions, attach wash-sale risk,
	// replacements and priority, and rank.
	Identify(ctx context.Context, positions []domain.Position, recent []domain.Transaction, config domain.TaxConfig) (*domain.HarvestReport, error)
	RecommendReplacements(ctx context.Context, symbol string) ([]Replacement, error)
	CheckCompliance(ctx context.Context, input ComplianceInput) (*domain.ComplianceResult, error)
}

type IdentifyInput struct {
	AccountID *uuid.UUID
	Config    domain.TaxConfig
	// Now defaults to current UTC time.
	Now time.Time
}

type ComplianceInput struct {
	SellSymbol      string
	BuySymbol       string
	TransactionDate time.Time
	AccountID       *uuid.UUID
}

type Replacement struct {
	Symbol          string
	SimilarityScore decimal.Decimal
	// WashSaleSafe is false when buying this replacement would itself
	// trigger the wash-sale rule against the harvested symbol.
	WashSaleSafe bool
}

type harvestServiceHandler struct {
	TransactionRepository repository.TransactionRepository
	HoldingsService       l1_service.HoldingsService
	SimilarityProvider    l2_service.SimilarityProvider
	WashSaleChecker       l2_service.WashSaleChecker
	Config                domain.TaxConfig
}

func NewHarvestService(
	transactionRepository repository.TransactionRepository,
	holdingsService l1_service.HoldingsService,
	similarityProvider l2_service.SimilarityProvider,
	washSaleChecker l2_service.WashSaleChecker,
	config domain.TaxConfig,
) HarvestService {
	return harvestServiceHandler{
		TransactionRepository: transactionRepository,
		HoldingsService:       holdingsService,
		SimilarityProvider:    similarityProvider,
		WashSaleChecker:       washSaleChecker,
		Config:                config,
	}
}

func (h harvestServiceHandler) IdentifyOpportunities(ctx context.Context, input IdentifyInput) (*domain.HarvestReport, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	profile, _ := domain.GetProfile(ctx)

	_, endSpan := profile.StartNewSpan("list positions")
	positions, err := h.HoldingsService.ListPositions(ctx, input.AccountID)
	endSpan()
	if err != nil {
		return nil, err
	}

	windowStart := now.AddDate(0, 0, -input.Config.WashSaleDays)
	recent, err := h.TransactionRepository.List(repository.TransactionListFilter{
		AccountID: input.AccountID,
		StartDate: &windowStart,
		EndDate:   &now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	_, endSpan = profile.StartNewSpan("identify opportunities")
	defer endSpan()
	return h.Identify(ctx, positions, recent, input.Config)
}

func (h harvestServiceHandler) Identify(ctx context.Context, positions []domain.Position, recent []domain.Transaction, config domain.TaxConfig) (*domain.HarvestReport, error) {
	if len(positions) == 0 {
		return nil, domain.ErrNoPositions
	}
	log := logger.FromContext(ctx)

	report := &domain.HarvestReport{
		Opportunities: []domain.HarvestOpportunity{},
	}

	lossCutoff := config.MinimumLossThreshold.Neg()
	for _, position := range positions {
		// strict inequality: a loss exactly at the threshold does not
		// qualify
		if !position.UnrealizedGainLoss.LessThan(lossCutoff) {
			continue
		}

		unrealizedLoss := position.UnrealizedGainLoss.Abs()
		taxBenefit := unrealizedLoss.Mul(config.MarginalTaxRate)

		washSaleRisk := hasRecentPurchase(recent, position.Symbol)

		replacements, err := h.SimilarityProvider.SimilarAssets(ctx, position.Symbol)
		if err != nil {
			// a missing replacement list degrades the opportunity,
			// it does not abort the scan
			log.Warnf("failed to load replacements for %s: %v", position.Symbol, err)
			replacements = []string{}
		}

		priority := decimal.Zero
		if position.CurrentValue.IsPositive() {
			priority = taxBenefit.Div(position.CurrentValue)
		}
		if washSaleRisk {
			// discounted: cannot execute immediately
			priority = priority.Div(decimal.NewFromInt(2))
		}

		report.Opportunities = append(report.Opportunities, domain.HarvestOpportunity{
			Symbol:             position.Symbol,
			UnrealizedLoss:     unrealizedLoss,
			CurrentValue:       position.CurrentValue,
			TaxBenefit:         taxBenefit,
			WashSaleRisk:       washSaleRisk,
			ReplacementOptions: replacements,
			PriorityScore:      priority,
		})
		report.TotalHarvestableLosses = report.TotalHarvestableLosses.Add(unrealizedLoss)
		report.EstimatedTaxSavings = report.EstimatedTaxSavings.Add(taxBenefit)
	}

	sort.SliceStable(report.Opportunities, func(i, j int) bool {
		return report.Opportunities[i].TaxBenefit.GreaterThan(report.Opportunities[j].TaxBenefit)
	})

	return report, nil
}

func hasRecentPurchase(recent []domain.Transaction, symbol string) bool {
	for _, t := range recent {
		if t.Type == domain.TransactionType_Buy && t.Symbol == symbol {
			return true
		}
	}
	return false
}

func (h harvestServiceHandler) RecommendReplacements(ctx context.Context, symbol string) ([]Replacement, error) {
	if symbol == "" {
		return nil, fmt.Errorf("recommend replacements: symbol is required: %w", domain.ErrInvalidArguments)
	}

	candidates, err := h.SimilarityProvider.SimilarAssets(ctx, symbol)
	if err != nil {
		return nil, err
	}

	out := make([]Replacement, 0, len(candidates))
	for _, candidate := range candidates {
		assessment, err := h.SimilarityProvider.Assess(ctx, symbol, candidate)
		if err != nil {
			return nil, err
		}
		out = append(out, Replacement{
			Symbol:          candidate,
			SimilarityScore: assessment.Score,
			WashSaleSafe:    !assessment.SubstantiallyIdentical,
		})
	}

	return out, nil
}

func (h harvestServiceHandler) CheckCompliance(ctx context.Context, input ComplianceInput) (*domain.ComplianceResult, error) {
	if input.SellSymbol == "" || input.BuySymbol == "" {
		return nil, fmt.Errorf("compliance check: sell and buy symbols are required: %w", domain.ErrInvalidArguments)
	}

	similarity, err := h.SimilarityProvider.Assess(ctx, input.SellSymbol, input.BuySymbol)
	if err != nil {
		return nil, err
	}

	windowStart := input.TransactionDate.AddDate(0, 0, -h.Config.WashSaleDays)
	windowEnd := input.TransactionDate.AddDate(0, 0, h.Config.WashSaleDays)
	recent, err := h.TransactionRepository.List(repository.TransactionListFilter{
		AccountID: input.AccountID,
		StartDate: &windowStart,
		EndDate:   &windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction window: %w", err)
	}

	result := h.WashSaleChecker.Check(l2_service.WashSaleCheckInput{
		SellSymbol:         input.SellSymbol,
		BuySymbol:          input.BuySymbol,
		TransactionDate:    input.TransactionDate,
		RecentTransactions: recent,
		Similarity:         similarity,
	})

	return &result, nil
}
