package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"taxharvest/internal/db/models/postgres/public/model"
	. "taxharvest/internal/db/models/postgres/public/table"
	"taxharvest/internal/util"
	"time"

	"github.com/shopspring/decimal"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceCache map[string]map[time.Time]decimal.Decimal

func (h *AdjustedPriceRepositoryHandler) GetFromCache(symbol string, date time.Time) *decimal.Decimal {
	pc := h.Cache
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if _, ok := pc[symbol]; ok {
		if price, ok := pc[symbol][date]; ok {
			return util.DecimalPointer(price)
		}
	}
	return nil
}

func (h *AdjustedPriceRepositoryHandler) AddToCache(symbol string, date time.Time, price decimal.Decimal) {
	pc := h.Cache
	h.ReadMutex.Lock()
	if _, ok := pc[symbol]; !ok {
		pc[symbol] = map[time.Time]decimal.Decimal{}
	}
	pc[symbol][date] = price
	h.ReadMutex.Unlock()
}

type AdjustedPriceRepository interface {
	Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error
	GetMany(symbols []string, date time.Time) (map[string]decimal.Decimal, error)
	List(symbol string, start, end time.Time) ([]model.AdjustedPrice, error)
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return &AdjustedPriceRepositoryHandler{
		Db:        db,
		Cache:     make(PriceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type AdjustedPriceRepositoryHandler struct {
	Db        *sql.DB
	Cache     PriceCache
	ReadMutex *sync.RWMutex
}

func (h *AdjustedPriceRepositoryHandler) Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}
	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

// GetMany batches the latest price at or before date for each symbol.
// Symbols with nothing in the lookback window are absent from the result.
func (h *AdjustedPriceRepositoryHandler) GetMany(symbols []string, date time.Time) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	seen := map[string]bool{}
	uncached := []Expression{}
	for _, s := range symbols {
		if seen[s] {
			continue
		}
		seen[s] = true
		if pc := h.GetFromCache(s, date); pc != nil {
			out[s] = *pc
		} else {
			uncached = append(uncached, String(s))
		}
	}
	if len(uncached) == 0 {
		return out, nil
	}

	// range query so weekends and holidays fall back to t-3
	minDate := DateT(date.AddDate(0, 0, -3))
	maxDate := DateT(date)
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.IN(uncached...),
				AdjustedPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(AdjustedPrice.Symbol.ASC(), AdjustedPrice.Date.ASC())

	results := []model.AdjustedPrice{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices on %v: %w", date, err)
	}

	// ascending date order so the newest row per symbol wins
	for _, r := range results {
		out[r.Symbol] = r.Price
		h.AddToCache(r.Symbol, date, r.Price)
	}
	return out, nil
}

func (h *AdjustedPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]model.AdjustedPrice, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	results := []model.AdjustedPrice{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	return results, nil
}
