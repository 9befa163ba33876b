package internal

import (
	"database/sql"
	"fmt"
	"taxharvest/internal/db/models/postgres/public/model"
	"taxharvest/internal/repository"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// IngestPrices pulls daily adjusted closes for a symbol and upserts them.
// Holdings valuation and the correlation-based similarity fallback both read
// from this table.
func IngestPrices(
	tx *sql.Tx,
	symbol string,
	adjPricesRepository repository.AdjustedPriceRepository,
) error {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AdjustedPrice{}

	for iter.Next() {
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0),
			Price:     iter.Bar().AdjClose,
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	err := adjPricesRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}

// UpdateTrackedPrices refreshes prices for every ticker in the ledger.
func UpdateTrackedPrices(
	tx *sql.Tx,
	tickerRepository repository.TickerRepository,
	adjPricesRepository repository.AdjustedPriceRepository,
) error {
	tickers, err := tickerRepository.List()
	if err != nil {
		return err
	}
	if len(tickers) == 0 {
		return fmt.Errorf("no tickers to update prices for")
	}

	for _, ticker := range tickers {
		err = IngestPrices(tx, ticker.Symbol, adjPricesRepository)
		if err != nil {
			return fmt.Errorf("failed to ingest prices for %s: %w", ticker.Symbol, err)
		}
	}

	return nil
}
