package util

import (
	"github.com/shopspring/decimal"
)

func StringPointer(s string) *string {
	return &s
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}
