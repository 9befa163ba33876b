package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HoldingClassification string

const (
	HoldingClassification_ShortTerm HoldingClassification = "SHORT_TERM"
	HoldingClassification_LongTerm  HoldingClassification = "LONG_TERM"
)

// TaxLot is a single purchase batch. Lots are derived from buy transactions
// per query and never persisted; RemainingQuantity is drawn down as sells
// consume the lot.
type TaxLot struct {
	SourceTransactionID uuid.UUID
	Symbol              string
	PurchaseDate        time.Time
	OriginalQuantity    decimal.Decimal
	RemainingQuantity   decimal.Decimal
	CostPerShare        decimal.Decimal
	TotalCost           decimal.Decimal
}

// RemainingCost is the portion of the lot's original cost still held,
// prorated by remaining quantity.
func (l TaxLot) RemainingCost() decimal.Decimal {
	if l.OriginalQuantity.IsZero() {
		return decimal.Zero
	}
	return l.TotalCost.Mul(l.RemainingQuantity).Div(l.OriginalQuantity)
}

type HoldingPeriod struct {
	Days           int
	Classification HoldingClassification
}

// LotAllocation pairs a sale with one lot it consumed (fully or partially).
type LotAllocation struct {
	Lot               TaxLot
	QuantityAllocated decimal.Decimal
	CostBasis         decimal.Decimal
	HoldingPeriod     HoldingPeriod
}

type RealizedSale struct {
	Sale             Transaction
	Allocations      []LotAllocation
	TotalProceeds    decimal.Decimal
	TotalCostBasis   decimal.Decimal
	RealizedGainLoss decimal.Decimal
}

// QuantitySold is the total quantity matched against lots for this sale.
// For a fully-covered sale this equals |Sale.Quantity|.
func (s RealizedSale) QuantitySold() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Allocations {
		total = total.Add(a.QuantityAllocated)
	}
	return total
}
