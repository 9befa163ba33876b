package domain

import "errors"

var (
	// ErrNoPositions means there was nothing to analyze. Callers must
	// distinguish this from an empty successful analysis.
	ErrNoPositions = errors.New("no positions to analyze")

	ErrNoTransactions = errors.New("no transactions found")

	ErrNoHoldings = errors.New("no holdings found")

	// ErrInvalidArguments marks caller input errors so the API layer can
	// render them as 400 instead of 500.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInsufficientLots is warning-grade: the lot queue ran out before a
	// sale was fully matched. Partial results are still returned.
	ErrInsufficientLots = errors.New("insufficient lots to cover sale")
)
