package l1_service

import (
	"context"
	"fmt"
	"taxharvest/internal/domain"
	"taxharvest/internal/logger"
	"taxharvest/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HoldingsService is the positions provider: it derives current holding
// snapshots from the transaction ledger and latest prices.
type HoldingsService interface {
	ListPositions(ctx context.Context, accountID *uuid.UUID) ([]domain.Position, error)
}

type holdingsServiceHandler struct {
	TransactionRepository repository.TransactionRepository
	AdjPriceRepository    repository.AdjustedPriceRepository
	LotAllocator          LotAllocator
}

func NewHoldingsService(
	transactionRepository repository.TransactionRepository,
	adjPriceRepository repository.AdjustedPriceRepository,
	lotAllocator LotAllocator,
) HoldingsService {
	return holdingsServiceHandler{
		TransactionRepository: transactionRepository,
		AdjPriceRepository:    adjPriceRepository,
		LotAllocator:          lotAllocator,
	}
}

func (h holdingsServiceHandler) ListPositions(ctx context.Context, accountID *uuid.UUID) ([]domain.Position, error) {
	log := logger.FromContext(ctx)

	transactions, err := h.TransactionRepository.List(repository.TransactionListFilter{
		AccountID: accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for holdings: %w", err)
	}
	if len(transactions) == 0 {
		return nil, domain.ErrNoHoldings
	}

	allocations, err := h.LotAllocator.AllocateAll(ctx, transactions)
	if err != nil {
		return nil, err
	}

	type openHolding struct {
		quantity  decimal.Decimal
		costBasis decimal.Decimal
		tickerID  uuid.UUID
	}
	holdings := map[string]openHolding{}
	symbols := []string{}
	for symbol, result := range allocations {
		quantity := decimal.Zero
		costBasis := decimal.Zero
		var tickerID uuid.UUID
		for _, lot := range result.RemainingLots {
			quantity = quantity.Add(lot.RemainingQuantity)
			costBasis = costBasis.Add(lot.RemainingCost())
		}
		if !quantity.IsPositive() {
			continue
		}
		for _, t := range transactions {
			if t.Symbol == symbol {
				tickerID = t.TickerID
				break
			}
		}
		holdings[symbol] = openHolding{quantity: quantity, costBasis: costBasis, tickerID: tickerID}
		symbols = append(symbols, symbol)
	}

	today := time.Now().UTC()
	prices, err := h.AdjPriceRepository.GetMany(symbols, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices for holdings: %w", err)
	}

	positions := []domain.Position{}
	for symbol, holding := range holdings {
		price, ok := prices[symbol]
		if !ok {
			// missing price data degrades to a skipped position
			// rather than failing the whole snapshot
			log.Warnf("skipping position %s: no recent price", symbol)
			continue
		}

		currentValue := holding.quantity.Mul(price)
		positions = append(positions, domain.Position{
			Symbol:             symbol,
			TickerID:           holding.tickerID,
			Quantity:           holding.quantity,
			CurrentValue:       currentValue,
			CostBasis:          holding.costBasis,
			UnrealizedGainLoss: currentValue.Sub(holding.costBasis),
		})
	}

	return positions, nil
}
