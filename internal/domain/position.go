package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is a current holding snapshot supplied by the holdings provider.
// The engine consumes these; it does not compute them.
type Position struct {
	Symbol             string
	TickerID           uuid.UUID
	Quantity           decimal.Decimal
	CurrentValue       decimal.Decimal
	CostBasis          decimal.Decimal
	UnrealizedGainLoss decimal.Decimal
}
