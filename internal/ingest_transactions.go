package internal

import (
	"database/sql"
	"fmt"
	"os"
	"taxharvest/internal/db/models/postgres/public/model"
	"taxharvest/internal/domain"
	"taxharvest/internal/repository"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionCsvRow struct {
	Date        string          `csv:"date"`
	Symbol      string          `csv:"symbol"`
	Type        string          `csv:"type"`
	Quantity    decimal.Decimal `csv:"quantity"`
	Price       decimal.Decimal `csv:"price"`
	TotalAmount decimal.Decimal `csv:"total_amount"`
}

// IngestTransactionsCsv seeds the ledger from a CSV export. Unknown symbols
// get tickers created on the fly; unknown transaction types fail the import
// before anything is written.
func IngestTransactionsCsv(
	tx *sql.Tx,
	filePath string,
	accountID uuid.UUID,
	tickerRepository repository.TickerRepository,
	transactionRepository repository.TransactionRepository,
) (int, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	rows := []transactionCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	models := []model.Transaction{}
	for i, row := range rows {
		txType, err := domain.NewTransactionType(row.Type)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}

		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return 0, fmt.Errorf("row %d: bad date %q: %w", i+1, row.Date, err)
		}

		ticker, err := tickerRepository.GetOrCreate(tx, model.Ticker{
			Symbol: row.Symbol,
		})
		if err != nil {
			return 0, err
		}

		totalAmount := row.TotalAmount
		if totalAmount.IsZero() {
			totalAmount = row.Quantity.Abs().Mul(row.Price)
		}

		models = append(models, model.Transaction{
			AccountID:   accountID,
			TickerID:    ticker.TickerID,
			Type:        string(txType),
			Quantity:    row.Quantity,
			Price:       row.Price,
			TotalAmount: totalAmount,
			Date:        date,
		})
	}

	if err := transactionRepository.Add(tx, models); err != nil {
		return 0, err
	}

	return len(models), nil
}
