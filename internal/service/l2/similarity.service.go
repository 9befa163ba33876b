package l2_service

import (
	"context"
	"errors"
	"fmt"
	"taxharvest/internal/domain"
	"taxharvest/internal/logger"
	"taxharvest/internal/repository"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// correlationLookbackDays is the shared price history used when no curated
// similarity row exists.
const correlationLookbackDays = 90

// SimilarityProvider supplies symbol similarity for the wash-sale
// "substantially identical" determination and replacement candidates for
// harvesting. The engine depends on this interface only; market-data details
// stay here.
type SimilarityProvider interface {
	Assess(ctx context.Context, sellSymbol, buySymbol string) (domain.SimilarityAssessment, error)
	SimilarAssets(ctx context.Context, symbol string) ([]string, error)
}

type similarityServiceHandler struct {
	SimilarityRepository repository.SimilarityRepository
	AdjPriceRepository   repository.AdjustedPriceRepository
	Config               domain.TaxConfig
}

func NewSimilarityService(
	similarityRepository repository.SimilarityRepository,
	adjPriceRepository repository.AdjustedPriceRepository,
	config domain.TaxConfig,
) SimilarityProvider {
	return similarityServiceHandler{
		SimilarityRepository: similarityRepository,
		AdjPriceRepository:   adjPriceRepository,
		Config:               config,
	}
}

func (h similarityServiceHandler) Assess(ctx context.Context, sellSymbol, buySymbol string) (domain.SimilarityAssessment, error) {
	if sellSymbol == buySymbol {
		return h.assessment(decimal.NewFromInt(1)), nil
	}

	row, err := h.SimilarityRepository.GetPair(sellSymbol, buySymbol)
	if err == nil {
		return h.assessment(row.SimilarityScore), nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return domain.SimilarityAssessment{}, fmt.Errorf("failed to look up similarity for %s/%s: %w", sellSymbol, buySymbol, err)
	}

	score, err := h.correlationScore(sellSymbol, buySymbol)
	if err != nil {
		// degraded: without price history we assume dissimilar rather
		// than blocking the compliance check
		logger.FromContext(ctx).Warnf("similarity fallback for %s/%s failed: %v", sellSymbol, buySymbol, err)
		return h.assessment(decimal.Zero), nil
	}

	return h.assessment(score), nil
}

func (h similarityServiceHandler) SimilarAssets(ctx context.Context, symbol string) ([]string, error) {
	rows, err := h.SimilarityRepository.ListForSymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to list replacements for %s: %w", symbol, err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.SimilarSymbol)
	}
	return out, nil
}

func (h similarityServiceHandler) assessment(score decimal.Decimal) domain.SimilarityAssessment {
	return domain.SimilarityAssessment{
		Score:                  score,
		SubstantiallyIdentical: score.GreaterThan(h.Config.SubstantiallyIdenticalScore),
	}
}

// correlationScore estimates similarity as the Pearson correlation of daily
// returns over the lookback window, clamped to [0, 1].
func (h similarityServiceHandler) correlationScore(a, b string) (decimal.Decimal, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -correlationLookbackDays)

	returnsA, err := h.dailyReturns(a, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	returnsB, err := h.dailyReturns(b, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	n := len(returnsA)
	if len(returnsB) < n {
		n = len(returnsB)
	}
	if n < 2 {
		return decimal.Zero, fmt.Errorf("insufficient shared price history for %s/%s", a, b)
	}

	correlation, err := stats.Correlation(returnsA[:n], returnsB[:n])
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to correlate %s/%s: %w", a, b, err)
	}
	if correlation < 0 {
		correlation = 0
	}

	return decimal.NewFromFloat(correlation), nil
}

func (h similarityServiceHandler) dailyReturns(symbol string, start, end time.Time) ([]float64, error) {
	prices, err := h.AdjPriceRepository.List(symbol, start, end)
	if err != nil {
		return nil, err
	}

	returns := []float64{}
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1].Price
		if prev.IsZero() {
			continue
		}
		change := prices[i].Price.Sub(prev).Div(prev)
		returns = append(returns, change.InexactFloat64())
	}

	return returns, nil
}
