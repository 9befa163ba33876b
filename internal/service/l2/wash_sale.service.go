package l2_service

import (
	"taxharvest/internal/domain"
	"time"
)

const (
	RiskFactorSubstantiallyIdentical = "Substantially identical securities"
	RiskFactorRecentPurchase         = "Recent purchase activity in replacement security"
)

// WashSaleChecker evaluates whether selling one security and buying another
// violates the wash-sale window.
type WashSaleChecker interface {
	Check(input WashSaleCheckInput) domain.ComplianceResult
}

type WashSaleCheckInput struct {
	SellSymbol      string
	BuySymbol       string
	TransactionDate time.Time
	// RecentTransactions is the transaction window around the proposed
	// trade, typically ±WashSaleDays.
	RecentTransactions []domain.Transaction
	Similarity         domain.SimilarityAssessment
	// Now defaults to the current UTC time.
	Now time.Time
}

type washSaleCheckerHandler struct {
	Config domain.TaxConfig
}

func NewWashSaleChecker(config domain.TaxConfig) WashSaleChecker {
	return washSaleCheckerHandler{Config: config}
}

func (h washSaleCheckerHandler) Check(input WashSaleCheckInput) domain.ComplianceResult {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result := domain.ComplianceResult{
		IsCompliant: true,
		RiskFactors: []string{},
		Similarity:  input.Similarity,
	}

	windowStart := input.TransactionDate.AddDate(0, 0, -h.Config.WashSaleDays)
	windowEnd := input.TransactionDate.AddDate(0, 0, h.Config.WashSaleDays)

	recentBuyOfReplacement := false
	for _, t := range input.RecentTransactions {
		if t.Type != domain.TransactionType_Buy || t.Symbol != input.BuySymbol {
			continue
		}
		// both window bounds are open: a purchase exactly 30 days out
		// does not trigger
		if t.Date.After(windowStart) && t.Date.Before(windowEnd) {
			recentBuyOfReplacement = true
			break
		}
	}

	if recentBuyOfReplacement {
		result.RiskFactors = append(result.RiskFactors, RiskFactorRecentPurchase)
	}

	if input.Similarity.SubstantiallyIdentical {
		result.RiskFactors = append([]string{RiskFactorSubstantiallyIdentical}, result.RiskFactors...)
		if recentBuyOfReplacement {
			result.IsCompliant = false
		}
	}

	result.SafeDate = h.safeDate(input.SellSymbol, input.RecentTransactions, now)

	return result
}

// safeDate is the most recent purchase of the sold security plus one day past
// the wash-sale window, or now when no purchase exists.
func (h washSaleCheckerHandler) safeDate(sellSymbol string, recent []domain.Transaction, now time.Time) time.Time {
	var lastPurchase *time.Time
	for _, t := range recent {
		if t.Type != domain.TransactionType_Buy || t.Symbol != sellSymbol {
			continue
		}
		d := t.Date
		if lastPurchase == nil || d.After(*lastPurchase) {
			lastPurchase = &d
		}
	}
	if lastPurchase == nil {
		return now
	}
	return lastPurchase.AddDate(0, 0, h.Config.WashSaleDays+1)
}
