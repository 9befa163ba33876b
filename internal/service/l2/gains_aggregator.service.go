package l2_service

import (
	"taxharvest/internal/domain"
	"taxharvest/internal/util"

	"github.com/shopspring/decimal"
)

// GainsAggregator rolls allocated sales up into short/long-term realized
// gain totals and annual summaries.
type GainsAggregator interface {
	AggregateYear(symbol string, sales []domain.RealizedSale, taxYear int) domain.GainsAnalysis
	AnnualSummary(salesBySymbol map[string][]domain.RealizedSale, taxYear int) domain.AnnualSummary
}

type gainsAggregatorHandler struct{}

func NewGainsAggregator() GainsAggregator {
	return gainsAggregatorHandler{}
}

func (h gainsAggregatorHandler) AggregateYear(symbol string, sales []domain.RealizedSale, taxYear int) domain.GainsAnalysis {
	analysis := domain.GainsAnalysis{
		Symbol:  symbol,
		TaxYear: taxYear,
		Sales:   []domain.RealizedSale{},
	}

	yearStart, yearEnd := util.TaxYearBounds(taxYear)
	for _, sale := range sales {
		if sale.Sale.Date.Before(yearStart) || !sale.Sale.Date.Before(yearEnd) {
			continue
		}
		analysis.Sales = append(analysis.Sales, sale)
		analysis.TotalRealized = analysis.TotalRealized.Add(sale.RealizedGainLoss)

		shortTerm, longTerm := splitByHoldingPeriod(sale)
		analysis.ShortTermGains = analysis.ShortTermGains.Add(shortTerm)
		analysis.LongTermGains = analysis.LongTermGains.Add(longTerm)
	}

	return analysis
}

// splitByHoldingPeriod distributes a sale's aggregate gain into short/long
// buckets by each allocation's quantity share. Lots within one sale can carry
// different cost bases; allocating the blended gain proportionally is a known
// approximation relative to computing each lot's own proceeds minus basis.
func splitByHoldingPeriod(sale domain.RealizedSale) (shortTerm, longTerm decimal.Decimal) {
	totalQuantity := sale.QuantitySold()
	if totalQuantity.IsZero() {
		return decimal.Zero, decimal.Zero
	}

	for _, allocation := range sale.Allocations {
		share := sale.RealizedGainLoss.
			Mul(allocation.QuantityAllocated).
			Div(totalQuantity)

		switch allocation.HoldingPeriod.Classification {
		case domain.HoldingClassification_LongTerm:
			longTerm = longTerm.Add(share)
		case domain.HoldingClassification_ShortTerm:
			shortTerm = shortTerm.Add(share)
		}
	}

	return shortTerm, longTerm
}

func (h gainsAggregatorHandler) AnnualSummary(salesBySymbol map[string][]domain.RealizedSale, taxYear int) domain.AnnualSummary {
	summary := domain.AnnualSummary{
		TaxYear: taxYear,
	}

	for symbol, sales := range salesBySymbol {
		analysis := h.AggregateYear(symbol, sales, taxYear)
		for _, sale := range analysis.Sales {
			summary.TotalProceeds = summary.TotalProceeds.Add(sale.TotalProceeds)
			summary.TransactionCount++
		}
		summary.NetCapitalGains = summary.NetCapitalGains.Add(analysis.TotalRealized)
		summary.ShortTermGains = summary.ShortTermGains.Add(analysis.ShortTermGains)
		summary.LongTermGains = summary.LongTermGains.Add(analysis.LongTermGains)
	}

	return summary
}
