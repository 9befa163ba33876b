package l1_service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"taxharvest/internal/domain"
	"taxharvest/internal/logger"
	"taxharvest/internal/util"

	"github.com/shopspring/decimal"
)

// LotAllocator matches sells against a FIFO queue of buy lots for a single
// symbol. It is pure: every call rebuilds its own lot queue, so allocations
// for different symbols can run concurrently.
type LotAllocator interface {
	Allocate(ctx context.Context, buys, sells []domain.Transaction) (*AllocationResult, error)
	AllocateAll(ctx context.Context, transactions []domain.Transaction) (map[string]*AllocationResult, error)
}

type AllocationResult struct {
	RealizedSales []domain.RealizedSale
	// RemainingLots are the open lots left after all sells are matched,
	// oldest first.
	RemainingLots []domain.TaxLot
	// Warnings records degraded computations, e.g. a sale the lot queue
	// could not fully cover. Results are still returned.
	Warnings []string
}

type lotAllocatorHandler struct {
	Config domain.TaxConfig
}

func NewLotAllocator(config domain.TaxConfig) LotAllocator {
	return lotAllocatorHandler{Config: config}
}

func (h lotAllocatorHandler) Allocate(ctx context.Context, buys, sells []domain.Transaction) (*AllocationResult, error) {
	log := logger.FromContext(ctx)

	lots, err := buildLotQueue(buys)
	if err != nil {
		return nil, err
	}

	sells = append([]domain.Transaction{}, sells...)
	sort.Slice(sells, func(i, j int) bool {
		return sells[i].Date.Before(sells[j].Date)
	})

	result := &AllocationResult{
		RealizedSales: []domain.RealizedSale{},
	}

	for _, sell := range sells {
		if sell.Type != domain.TransactionType_Sell {
			return nil, fmt.Errorf("allocate: transaction %s is not a sell", sell.TransactionID)
		}

		realized, exhausted := lots.consume(sell, h.Config)
		if exhausted {
			warning := fmt.Sprintf(
				"%s: %s sale of %s on %s: matched %s of %s shares",
				domain.ErrInsufficientLots,
				sell.Symbol,
				sell.Quantity.Abs(),
				sell.Date.Format("2006-01-02"),
				realized.QuantitySold(),
				sell.Quantity.Abs(),
			)
			log.Warnf("lot allocation degraded: %s", warning)
			result.Warnings = append(result.Warnings, warning)
		}
		result.RealizedSales = append(result.RealizedSales, realized)
	}

	result.RemainingLots = lots.remaining()

	return result, nil
}

// AllocateAll groups mixed-symbol transaction history by symbol and runs each
// symbol's allocation independently. One symbol failing does not abort the
// rest; failures are logged and surfaced as warnings on an empty result for
// that symbol.
func (h lotAllocatorHandler) AllocateAll(ctx context.Context, transactions []domain.Transaction) (map[string]*AllocationResult, error) {
	log := logger.FromContext(ctx)

	bySymbol := map[string][]domain.Transaction{}
	for _, t := range transactions {
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = map[string]*AllocationResult{}
	)
	for symbol, txs := range bySymbol {
		wg.Add(1)
		go func(symbol string, txs []domain.Transaction) {
			defer wg.Done()
			buys, sells := SplitBuysAndSells(txs)
			res, err := h.Allocate(ctx, buys, sells)
			if err != nil {
				log.Errorf("failed to allocate lots for %s: %v", symbol, err)
				res = &AllocationResult{
					Warnings: []string{fmt.Sprintf("%s: allocation failed: %v", symbol, err)},
				}
			}
			mu.Lock()
			results[symbol] = res
			mu.Unlock()
		}(symbol, txs)
	}
	wg.Wait()

	return results, nil
}

// SplitBuysAndSells partitions a mixed history into lot-affecting buys and
// sells. Dividend, fee, and interest records are cash-only.
func SplitBuysAndSells(transactions []domain.Transaction) (buys, sells []domain.Transaction) {
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionType_Buy:
			buys = append(buys, t)
		case domain.TransactionType_Sell:
			sells = append(sells, t)
		case domain.TransactionType_Dividend, domain.TransactionType_Fee, domain.TransactionType_Interest:
			// cash-only, no lot impact
		}
	}
	return buys, sells
}

// lotQueue is a FIFO queue over a slice with an advancing head index, so a
// full-lot consumption is O(1).
type lotQueue struct {
	lots []domain.TaxLot
	head int
}

func buildLotQueue(buys []domain.Transaction) (*lotQueue, error) {
	buys = append([]domain.Transaction{}, buys...)
	sort.Slice(buys, func(i, j int) bool {
		return buys[i].Date.Before(buys[j].Date)
	})

	q := &lotQueue{lots: make([]domain.TaxLot, 0, len(buys))}
	for _, buy := range buys {
		if buy.Type != domain.TransactionType_Buy {
			return nil, fmt.Errorf("lot queue: transaction %s is not a buy", buy.TransactionID)
		}
		qty := buy.Quantity.Abs()
		if qty.IsZero() {
			continue
		}
		totalCost := buy.TotalAmount.Abs()
		if totalCost.IsZero() {
			totalCost = qty.Mul(buy.Price)
		}
		q.lots = append(q.lots, domain.TaxLot{
			SourceTransactionID: buy.TransactionID,
			Symbol:              buy.Symbol,
			PurchaseDate:        buy.Date,
			OriginalQuantity:    qty,
			RemainingQuantity:   qty,
			CostPerShare:        totalCost.Div(qty),
			TotalCost:           totalCost,
		})
	}

	return q, nil
}

// consume matches one sell against the queue head-first. Returns the realized
// sale and whether the queue ran out before the sale was fully covered.
func (q *lotQueue) consume(sell domain.Transaction, config domain.TaxConfig) (domain.RealizedSale, bool) {
	remaining := sell.Quantity.Abs()
	realized := domain.RealizedSale{
		Sale:        sell,
		Allocations: []domain.LotAllocation{},
	}

	for remaining.IsPositive() && q.head < len(q.lots) {
		lot := &q.lots[q.head]

		var (
			allocatedQty decimal.Decimal
			costBasis    decimal.Decimal
		)
		if lot.RemainingQuantity.LessThanOrEqual(remaining) {
			// full consumption: the lot contributes its entire
			// remaining cost and leaves the queue
			allocatedQty = lot.RemainingQuantity
			costBasis = lot.RemainingCost()
			lot.RemainingQuantity = decimal.Zero
			q.head++
		} else {
			// partial consumption: prorate against the lot's
			// original quantity
			allocatedQty = remaining
			costBasis = lot.TotalCost.Mul(allocatedQty).Div(lot.OriginalQuantity)
			lot.RemainingQuantity = lot.RemainingQuantity.Sub(allocatedQty)
		}

		days := util.DaysBetween(lot.PurchaseDate, sell.Date)
		classification := domain.HoldingClassification_ShortTerm
		if days > config.LongTermHoldingDays {
			classification = domain.HoldingClassification_LongTerm
		}

		realized.Allocations = append(realized.Allocations, domain.LotAllocation{
			Lot:               *lot,
			QuantityAllocated: allocatedQty,
			CostBasis:         costBasis,
			HoldingPeriod: domain.HoldingPeriod{
				Days:           days,
				Classification: classification,
			},
		})
		realized.TotalCostBasis = realized.TotalCostBasis.Add(costBasis)
		remaining = remaining.Sub(allocatedQty)
	}

	matched := realized.QuantitySold()
	if matched.Equal(sell.Quantity.Abs()) && !sell.TotalAmount.IsZero() {
		realized.TotalProceeds = sell.TotalAmount.Abs()
	} else {
		realized.TotalProceeds = sell.Price.Mul(matched)
	}
	realized.RealizedGainLoss = realized.TotalProceeds.Sub(realized.TotalCostBasis)

	return realized, remaining.IsPositive()
}

func (q *lotQueue) remaining() []domain.TaxLot {
	out := []domain.TaxLot{}
	for i := q.head; i < len(q.lots); i++ {
		if q.lots[i].RemainingQuantity.IsPositive() {
			out = append(out, q.lots[i])
		}
	}
	return out
}
