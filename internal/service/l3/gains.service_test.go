package l3_service

import (
	"context"
	"taxharvest/internal/domain"
	mock_repository "taxharvest/internal/repository/mocks"
	l1_service "taxharvest/internal/service/l1"
	l2_service "taxharvest/internal/service/l2"
	"taxharvest/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLedgerTransaction(symbol string, transactionType domain.TransactionType, quantity, price float64, date time.Time) domain.Transaction {
	q := decimal.NewFromFloat(quantity)
	p := decimal.NewFromFloat(price)
	total := q.Abs().Mul(p)
	if transactionType == domain.TransactionType_Sell {
		q = q.Abs().Neg()
	}
	return domain.Transaction{
		TransactionID: uuid.New(),
		Symbol:        symbol,
		Type:          transactionType,
		Quantity:      q,
		Price:         p,
		TotalAmount:   total,
		Date:          date,
	}
}

func newGainsHandler(transactionRepository *mock_repository.MockTransactionRepository) GainsService {
	return NewGainsService(
		transactionRepository,
		l1_service.NewLotAllocator(domain.DefaultTaxConfig()),
		l2_service.NewGainsAggregator(),
	)
}

func TestCalculateRealizedGains(t *testing.T) {
	ctx := context.Background()

	t.Run("long-term gain on a partial sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		transactionRepository.EXPECT().
			ListForSymbol("AAPL").
			Return([]domain.Transaction{
				newLedgerTransaction("AAPL", domain.TransactionType_Buy, 100, 150, util.NewDate(2023, 1, 15)),
				newLedgerTransaction("AAPL", domain.TransactionType_Sell, 50, 175, util.NewDate(2024, 6, 15)),
			}, nil)

		analysis, err := handler.CalculateRealizedGains(ctx, "AAPL", 2024)
		require.NoError(t, err)
		require.Equal(t, "AAPL", analysis.Symbol)
		require.Len(t, analysis.Sales, 1)
		require.True(t, analysis.TotalRealized.Equal(decimal.NewFromInt(1250)))
		require.True(t, analysis.ShortTermGains.IsZero())
		require.True(t, analysis.LongTermGains.Equal(decimal.NewFromInt(1250)))
		require.Empty(t, analysis.Warnings)
	})

	t.Run("sales in other years are excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		transactionRepository.EXPECT().
			ListForSymbol("AAPL").
			Return([]domain.Transaction{
				newLedgerTransaction("AAPL", domain.TransactionType_Buy, 100, 150, util.NewDate(2023, 1, 15)),
				newLedgerTransaction("AAPL", domain.TransactionType_Sell, 50, 175, util.NewDate(2024, 6, 15)),
			}, nil)

		analysis, err := handler.CalculateRealizedGains(ctx, "AAPL", 2023)
		require.NoError(t, err)
		require.Empty(t, analysis.Sales)
		require.True(t, analysis.TotalRealized.IsZero())
	})

	t.Run("empty ledger returns ErrNoTransactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		transactionRepository.EXPECT().
			ListForSymbol("AAPL").
			Return([]domain.Transaction{}, nil)

		_, err := handler.CalculateRealizedGains(ctx, "AAPL", 2024)
		require.ErrorIs(t, err, domain.ErrNoTransactions)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		_, err := handler.CalculateRealizedGains(ctx, "", 2024)
		require.ErrorIs(t, err, domain.ErrInvalidArguments)

		_, err = handler.CalculateRealizedGains(ctx, "AAPL", 12024)
		require.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("oversold history surfaces a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		transactionRepository.EXPECT().
			ListForSymbol("NVDA").
			Return([]domain.Transaction{
				newLedgerTransaction("NVDA", domain.TransactionType_Buy, 10, 500, util.NewDate(2024, 1, 1)),
				newLedgerTransaction("NVDA", domain.TransactionType_Sell, 25, 600, util.NewDate(2024, 2, 1)),
			}, nil)

		analysis, err := handler.CalculateRealizedGains(ctx, "NVDA", 2024)
		require.NoError(t, err)
		require.Len(t, analysis.Warnings, 1)
		require.Contains(t, analysis.Warnings[0], domain.ErrInsufficientLots.Error())
	})
}

func TestCalculateAnnualSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("rolls up across symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		transactionRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Transaction{
				newLedgerTransaction("AAPL", domain.TransactionType_Buy, 10, 100, util.NewDate(2024, 1, 1)),
				newLedgerTransaction("AAPL", domain.TransactionType_Sell, 10, 110, util.NewDate(2024, 3, 1)),
				newLedgerTransaction("MSFT", domain.TransactionType_Buy, 10, 200, util.NewDate(2024, 1, 1)),
				newLedgerTransaction("MSFT", domain.TransactionType_Sell, 5, 180, util.NewDate(2024, 4, 1)),
			}, nil)

		summary, err := handler.CalculateAnnualSummary(ctx, 2024, nil)
		require.NoError(t, err)
		require.Equal(t, 2024, summary.TaxYear)
		require.Equal(t, 2, summary.TransactionCount)
		// 1100 + 900
		require.True(t, summary.TotalProceeds.Equal(decimal.NewFromInt(2000)))
		// 100 - 100
		require.True(t, summary.NetCapitalGains.IsZero(),
			"got net gains %s", summary.NetCapitalGains)
		require.True(t, summary.ShortTermGains.IsZero())
		require.True(t, summary.LongTermGains.IsZero())
	})

	t.Run("empty ledger returns ErrNoTransactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		handler := newGainsHandler(transactionRepository)

		transactionRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.Transaction{}, nil)

		_, err := handler.CalculateAnnualSummary(ctx, 2024, nil)
		require.ErrorIs(t, err, domain.ErrNoTransactions)
	})
}
