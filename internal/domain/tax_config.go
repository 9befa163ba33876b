package domain

import "github.com/shopspring/decimal"

// TaxConfig carries the tunable constants for lot classification and
// harvesting. Entry points take it explicitly; there is no package-level
// state to override.
type TaxConfig struct {
	// WashSaleDays is the half-width of the wash-sale window around a
	// sale, and the trailing window for repurchase risk.
	WashSaleDays int
	// LongTermHoldingDays is the strict lower bound for long-term
	// classification: a lot held exactly this many days is short-term.
	LongTermHoldingDays int
	// MinimumLossThreshold excludes positions whose unrealized loss is
	// not strictly worse than -threshold.
	MinimumLossThreshold decimal.Decimal
	// MarginalTaxRate is the assumed rate for tax-benefit estimates.
	MarginalTaxRate decimal.Decimal
	// SubstantiallyIdenticalScore is the similarity score above which two
	// securities trigger the wash-sale rule.
	SubstantiallyIdenticalScore decimal.Decimal
}

func DefaultTaxConfig() TaxConfig {
	return TaxConfig{
		WashSaleDays:                30,
		LongTermHoldingDays:         365,
		MinimumLossThreshold:        decimal.NewFromInt(100),
		MarginalTaxRate:             decimal.NewFromFloat(0.22),
		SubstantiallyIdenticalScore: decimal.NewFromFloat(0.9),
	}
}
