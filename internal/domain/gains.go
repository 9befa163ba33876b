package domain

import "github.com/shopspring/decimal"

// GainsAnalysis is the per-symbol realized gains breakdown for one tax year.
//
// Short/long-term buckets are filled by quantity-weighted proportion of each
// sale's aggregate gain, not by computing each lot's own gain. The two methods
// diverge when lots within a sale carry different cost bases; the proportional
// method is the one this system ships with.
type GainsAnalysis struct {
	Symbol         string
	TaxYear        int
	Sales          []RealizedSale
	TotalRealized  decimal.Decimal
	ShortTermGains decimal.Decimal
	LongTermGains  decimal.Decimal
	// Warnings surfaces degraded computations (e.g. insufficient lot
	// coverage) that produced partial results.
	Warnings []string
}

type AnnualSummary struct {
	TaxYear          int
	TotalProceeds    decimal.Decimal
	NetCapitalGains  decimal.Decimal
	ShortTermGains   decimal.Decimal
	LongTermGains    decimal.Decimal
	TransactionCount int
	Warnings         []string
}
