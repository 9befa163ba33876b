package repository

import (
	"database/sql"
	"fmt"
	"taxharvest/internal/db/models/postgres/public/model"
	"taxharvest/internal/db/models/postgres/public/table"
	"taxharvest/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TransactionListFilter struct {
	TickerIDs []uuid.UUID
	AccountID *uuid.UUID
	Types     []domain.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

type TransactionRepository interface {
	Add(tx *sql.Tx, transactions []model.Transaction) error
	List(filter TransactionListFilter) ([]domain.Transaction, error)
	ListForSymbol(symbol string) ([]domain.Transaction, error)
}

type transactionRepositoryHandler struct {
	Db               *sql.DB
	TickerRepository TickerRepository
}

func NewTransactionRepository(db *sql.DB, tickerRepository TickerRepository) TransactionRepository {
	return transactionRepositoryHandler{
		Db:               db,
		TickerRepository: tickerRepository,
	}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	for i := range transactions {
		transactions[i].CreatedAt = time.Now().UTC()
	}
	query := table.Transaction.
		INSERT(table.Transaction.MutableColumns).
		MODELS(transactions)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}

	return nil
}

func (h transactionRepositoryHandler) List(filter TransactionListFilter) ([]domain.Transaction, error) {
	expressions := []postgres.BoolExpression{}
	if len(filter.TickerIDs) > 0 {
		ids := make([]postgres.Expression, len(filter.TickerIDs))
		for i, id := range filter.TickerIDs {
			ids[i] = postgres.UUID(id)
		}
		expressions = append(expressions, table.Transaction.TickerID.IN(ids...))
	}
	if filter.AccountID != nil {
		expressions = append(expressions, table.Transaction.AccountID.EQ(postgres.UUID(*filter.AccountID)))
	}
	if len(filter.Types) > 0 {
		types := make([]postgres.Expression, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = postgres.String(string(t))
		}
		expressions = append(expressions, table.Transaction.Type.IN(types...))
	}
	if filter.StartDate != nil {
		expressions = append(expressions, table.Transaction.Date.GT_EQ(postgres.DateT(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		expressions = append(expressions, table.Transaction.Date.LT_EQ(postgres.DateT(*filter.EndDate)))
	}

	query := table.Transaction.
		SELECT(table.Transaction.AllColumns, table.Ticker.Symbol).
		FROM(
			table.Transaction.INNER_JOIN(
				table.Ticker,
				table.Transaction.TickerID.EQ(table.Ticker.TickerID),
			),
		).
		ORDER_BY(table.Transaction.Date.ASC())

	if len(expressions) > 0 {
		query = query.WHERE(postgres.AND(expressions...))
	}

	results := []struct {
		model.Transaction
		model.Ticker
	}{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make([]domain.Transaction, 0, len(results))
	for _, r := range results {
		t, err := transactionFromModel(r.Transaction, r.Ticker.Symbol)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func (h transactionRepositoryHandler) ListForSymbol(symbol string) ([]domain.Transaction, error) {
	ticker, err := h.TickerRepository.GetBySymbol(symbol)
	if err != nil {
		return nil, err
	}

	return h.List(TransactionListFilter{
		TickerIDs: []uuid.UUID{ticker.TickerID},
	})
}

func transactionFromModel(m model.Transaction, symbol string) (domain.Transaction, error) {
	txType, err := domain.NewTransactionType(m.Type)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", m.TransactionID, err)
	}

	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		TickerID:      m.TickerID,
		Symbol:        symbol,
		Type:          txType,
		Quantity:      m.Quantity,
		Price:         m.Price,
		TotalAmount:   m.TotalAmount,
		Date:          m.Date,
	}, nil
}
