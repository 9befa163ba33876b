package repository

import (
	"database/sql"
	"fmt"
	"taxharvest/internal/db/models/postgres/public/model"
	"taxharvest/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TickerRepository interface {
	Get(tickerID uuid.UUID) (*model.Ticker, error)
	GetBySymbol(symbol string) (*model.Ticker, error)
	List() ([]model.Ticker, error)
	GetOrCreate(tx *sql.Tx, t model.Ticker) (*model.Ticker, error)
}

type tickerRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerRepository(db *sql.DB) TickerRepository {
	return tickerRepositoryHandler{Db: db}
}

func (h tickerRepositoryHandler) Get(tickerID uuid.UUID) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.TickerID.EQ(
			postgres.UUID(tickerID),
		))

	out := model.Ticker{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker: %w", err)
	}

	return &out, nil
}

func (h tickerRepositoryHandler) GetBySymbol(symbol string) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.Symbol.EQ(postgres.String(symbol)))

	out := model.Ticker{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker %s: %w", symbol, err)
	}

	return &out, nil
}

func (h tickerRepositoryHandler) List() ([]model.Ticker, error) {
	query := table.Ticker.SELECT(table.Ticker.AllColumns)
	result := []model.Ticker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	return result, nil
}

func (h tickerRepositoryHandler) GetOrCreate(tx *sql.Tx, t model.Ticker) (*model.Ticker, error) {
	query := table.Ticker.
		INSERT(table.Ticker.MutableColumns).
		MODEL(t).
		ON_CONFLICT(table.Ticker.Symbol).DO_UPDATE(
		postgres.SET(
			table.Ticker.Symbol.SET(table.Ticker.EXCLUDED.Symbol),
		),
	).RETURNING(table.Ticker.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Ticker{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticker: %w", err)
	}

	return &out, nil
}
