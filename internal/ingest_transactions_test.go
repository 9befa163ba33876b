package internal

import (
	"os"
	"path/filepath"
	"taxharvest/internal/db/models/postgres/public/model"
	mock_repository "taxharvest/internal/repository/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeTempCsv(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestIngestTransactionsCsv(t *testing.T) {
	accountID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		path := writeTempCsv(t, `date,symbol,type,quantity,price,total_amount
2023-01-15,AAPL,BUY,100,150,15000
2024-06-15,AAPL,SELL,-50,175,
`)

		tickerID := uuid.New()
		tickerRepository.EXPECT().
			GetOrCreate(nil, model.Ticker{Symbol: "AAPL"}).
			Return(&model.Ticker{TickerID: tickerID, Symbol: "AAPL"}, nil).
			Times(2)

		var inserted []model.Transaction
		transactionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ any, transactions []model.Transaction) error {
				inserted = transactions
				return nil
			})

		n, err := IngestTransactionsCsv(nil, path, accountID, tickerRepository, transactionRepository)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.Len(t, inserted, 2)

		require.Equal(t, "BUY", inserted[0].Type)
		require.Equal(t, tickerID, inserted[0].TickerID)
		require.True(t, inserted[0].TotalAmount.Equal(decimal.NewFromInt(15000)))

		// blank total falls back to quantity * price
		require.True(t, inserted[1].TotalAmount.Equal(decimal.NewFromInt(8750)),
			"got total %s", inserted[1].TotalAmount)
	})

	t.Run("unknown transaction type aborts the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		path := writeTempCsv(t, `date,symbol,type,quantity,price,total_amount
2023-01-15,AAPL,TRANSFER,100,150,15000
`)

		_, err := IngestTransactionsCsv(nil, path, accountID, tickerRepository, transactionRepository)
		require.Error(t, err)
	})

	t.Run("bad date aborts the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		path := writeTempCsv(t, `date,symbol,type,quantity,price,total_amount
01/15/2023,AAPL,BUY,100,150,15000
`)

		_, err := IngestTransactionsCsv(nil, path, accountID, tickerRepository, transactionRepository)
		require.Error(t, err)
	})
}
