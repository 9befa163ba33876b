package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionType_Buy      TransactionType = "BUY"
	TransactionType_Sell     TransactionType = "SELL"
	TransactionType_Dividend TransactionType = "DIVIDEND"
	TransactionType_Fee      TransactionType = "FEE"
	TransactionType_Interest TransactionType = "INTEREST"
)

func NewTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionType_Buy, TransactionType_Sell, TransactionType_Dividend,
		TransactionType_Fee, TransactionType_Interest:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is an immutable ledger record. The engine only reads these;
// the surrounding application owns creation and storage.
type Transaction struct {
	TransactionID uuid.UUID
	AccountID     uuid.UUID
	TickerID      uuid.UUID
	Symbol        string
	Type          TransactionType
	// Quantity is signed; sells are recorded negative. Engine code
	// always matches on the absolute value.
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	TotalAmount decimal.Decimal
	Date        time.Time
}
