package l1_service

import (
	"context"
	"taxharvest/internal/domain"
	"taxharvest/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(
	symbol string,
	transactionType domain.TransactionType,
	quantity, price float64,
	date time.Time,
) domain.Transaction {
	q := decimal.NewFromFloat(quantity)
	p := decimal.NewFromFloat(price)
	total := q.Abs().Mul(p)
	if transactionType == domain.TransactionType_Sell {
		q = q.Abs().Neg()
	}
	return domain.Transaction{
		TransactionID: uuid.New(),
		AccountID:     uuid.New(),
		TickerID:      uuid.New(),
		Symbol:        symbol,
		Type:          transactionType,
		Quantity:      q,
		Price:         p,
		TotalAmount:   total,
		Date:          date,
	}
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()
	handler := NewLotAllocator(domain.DefaultTaxConfig())

	t.Run("partial sale of a long-term lot", func(t *testing.T) {
		buys := []domain.Transaction{
			newTestTransaction("AAPL", domain.TransactionType_Buy, 100, 150, util.NewDate(2023, 1, 15)),
		}
		sells := []domain.Transaction{
			newTestTransaction("AAPL", domain.TransactionType_Sell, 50, 175, util.NewDate(2024, 6, 15)),
		}

		result, err := handler.Allocate(ctx, buys, sells)
		require.NoError(t, err)
		require.Empty(t, result.Warnings)
		require.Len(t, result.RealizedSales, 1)

		sale := result.RealizedSales[0]
		require.Len(t, sale.Allocations, 1)

		allocation := sale.Allocations[0]
		require.True(t, allocation.QuantityAllocated.Equal(decimal.NewFromInt(50)))
		// 15000 * 50 / 100
		require.True(t, allocation.CostBasis.Equal(decimal.NewFromInt(7500)),
			"got cost basis %s", allocation.CostBasis)
		require.Equal(t, 517, allocation.HoldingPeriod.Days)
		require.Equal(t, domain.HoldingClassification_LongTerm, allocation.HoldingPeriod.Classification)

		require.True(t, sale.TotalProceeds.Equal(decimal.NewFromInt(8750)))
		require.True(t, sale.RealizedGainLoss.Equal(decimal.NewFromInt(1250)),
			"got gain %s", sale.RealizedGainLoss)

		require.Len(t, result.RemainingLots, 1)
		require.True(t, result.RemainingLots[0].RemainingQuantity.Equal(decimal.NewFromInt(50)))
	})

	t.Run("fifo consumes oldest lots first", func(t *testing.T) {
		buys := []domain.Transaction{
			newTestTransaction("MSFT", domain.TransactionType_Buy, 10, 300, util.NewDate(2024, 3, 1)),
			newTestTransaction("MSFT", domain.TransactionType_Buy, 10, 100, util.NewDate(2024, 1, 1)),
		}
		sells := []domain.Transaction{
			newTestTransaction("MSFT", domain.TransactionType_Sell, 15, 200, util.NewDate(2024, 6, 1)),
		}

		result, err := handler.Allocate(ctx, buys, sells)
		require.NoError(t, err)
		require.Len(t, result.RealizedSales, 1)

		sale := result.RealizedSales[0]
		require.Len(t, sale.Allocations, 2)

		// oldest lot fully consumed
		require.Equal(t, util.NewDate(2024, 1, 1), sale.Allocations[0].Lot.PurchaseDate)
		require.True(t, sale.Allocations[0].QuantityAllocated.Equal(decimal.NewFromInt(10)))
		require.True(t, sale.Allocations[0].CostBasis.Equal(decimal.NewFromInt(1000)))

		// newer lot partially consumed, basis prorated
		require.Equal(t, util.NewDate(2024, 3, 1), sale.Allocations[1].Lot.PurchaseDate)
		require.True(t, sale.Allocations[1].QuantityAllocated.Equal(decimal.NewFromInt(5)))
		require.True(t, sale.Allocations[1].CostBasis.Equal(decimal.NewFromInt(1500)))

		// 3000 - 2500
		require.True(t, sale.RealizedGainLoss.Equal(decimal.NewFromInt(500)))

		require.Len(t, result.RemainingLots, 1)
		require.True(t, result.RemainingLots[0].RemainingQuantity.Equal(decimal.NewFromInt(5)))
	})

	t.Run("365 days held is still short term", func(t *testing.T) {
		buys := []domain.Transaction{
			newTestTransaction("VTI", domain.TransactionType_Buy, 10, 200, util.NewDate(2023, 1, 1)),
		}
		sells := []domain.Transaction{
			newTestTransaction("VTI", domain.TransactionType_Sell, 5, 210, util.NewDate(2024, 1, 1)),
			newTestTransaction("VTI", domain.TransactionType_Sell, 5, 210, util.NewDate(2024, 1, 2)),
		}

		result, err := handler.Allocate(ctx, buys, sells)
		require.NoError(t, err)
		require.Len(t, result.RealizedSales, 2)

		exactlyOneYear := result.RealizedSales[0].Allocations[0].HoldingPeriod
		require.Equal(t, 365, exactlyOneYear.Days)
		require.Equal(t, domain.HoldingClassification_ShortTerm, exactlyOneYear.Classification)

		oneYearAndADay := result.RealizedSales[1].Allocations[0].HoldingPeriod
		require.Equal(t, 366, oneYearAndADay.Days)
		require.Equal(t, domain.HoldingClassification_LongTerm, oneYearAndADay.Classification)
	})

	t.Run("oversold position returns partial result with warning", func(t *testing.T) {
		buys := []domain.Transaction{
			newTestTransaction("NVDA", domain.TransactionType_Buy, 10, 500, util.NewDate(2024, 1, 1)),
		}
		sells := []domain.Transaction{
			newTestTransaction("NVDA", domain.TransactionType_Sell, 25, 600, util.NewDate(2024, 2, 1)),
		}

		result, err := handler.Allocate(ctx, buys, sells)
		require.NoError(t, err)
		require.Len(t, result.Warnings, 1)
		require.Contains(t, result.Warnings[0], domain.ErrInsufficientLots.Error())

		sale := result.RealizedSales[0]
		require.True(t, sale.QuantitySold().Equal(decimal.NewFromInt(10)))
		// proceeds cover only the matched quantity
		require.True(t, sale.TotalProceeds.Equal(decimal.NewFromInt(6000)),
			"got proceeds %s", sale.TotalProceeds)
		require.True(t, sale.RealizedGainLoss.Equal(decimal.NewFromInt(1000)))
		require.Empty(t, result.RemainingLots)
	})

	t.Run("rejects a buy in the sell list", func(t *testing.T) {
		sells := []domain.Transaction{
			newTestTransaction("AAPL", domain.TransactionType_Buy, 10, 100, util.NewDate(2024, 1, 1)),
		}
		_, err := handler.Allocate(ctx, nil, sells)
		require.Error(t, err)
	})
}

func TestAllocateAll(t *testing.T) {
	ctx := context.Background()
	handler := NewLotAllocator(domain.DefaultTaxConfig())

	transactions := []domain.Transaction{
		newTestTransaction("AAPL", domain.TransactionType_Buy, 10, 100, util.NewDate(2024, 1, 1)),
		newTestTransaction("MSFT", domain.TransactionType_Buy, 10, 200, util.NewDate(2024, 1, 1)),
		newTestTransaction("AAPL", domain.TransactionType_Sell, 5, 110, util.NewDate(2024, 2, 1)),
		newTestTransaction("AAPL", domain.TransactionType_Dividend, 0, 0, util.NewDate(2024, 3, 1)),
	}

	results, err := handler.AllocateAll(ctx, transactions)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Len(t, results["AAPL"].RealizedSales, 1)
	require.True(t, results["AAPL"].RealizedSales[0].RealizedGainLoss.Equal(decimal.NewFromInt(50)))

	require.Empty(t, results["MSFT"].RealizedSales)
	require.Len(t, results["MSFT"].RemainingLots, 1)
}

func TestSplitBuysAndSells(t *testing.T) {
	transactions := []domain.Transaction{
		newTestTransaction("AAPL", domain.TransactionType_Buy, 10, 100, util.NewDate(2024, 1, 1)),
		newTestTransaction("AAPL", domain.TransactionType_Sell, 5, 110, util.NewDate(2024, 2, 1)),
		newTestTransaction("AAPL", domain.TransactionType_Dividend, 0, 0, util.NewDate(2024, 3, 1)),
		newTestTransaction("AAPL", domain.TransactionType_Fee, 0, 0, util.NewDate(2024, 3, 1)),
	}

	buys, sells := SplitBuysAndSells(transactions)
	require.Len(t, buys, 1)
	require.Len(t, sells, 1)
}
