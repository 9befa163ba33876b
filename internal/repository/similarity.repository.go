package repository

import (
	"database/sql"
	"fmt"
	"taxharvest/internal/db/models/postgres/public/model"
	"taxharvest/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SimilarityRepository serves the curated symbol-substitute table. Rows are
// ranked; rank 1 is the preferred replacement.
type SimilarityRepository interface {
	Add(tx *sql.Tx, rows []model.AssetSimilarity) error
	ListForSymbol(symbol string) ([]model.AssetSimilarity, error)
	GetPair(a, b string) (*model.AssetSimilarity, error)
}

type similarityRepositoryHandler struct {
	Db *sql.DB
}

func NewSimilarityRepository(db *sql.DB) SimilarityRepository {
	return similarityRepositoryHandler{Db: db}
}

func (h similarityRepositoryHandler) Add(tx *sql.Tx, rows []model.AssetSimilarity) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].CreatedAt = time.Now().UTC()
	}
	query := table.AssetSimilarity.
		INSERT(table.AssetSimilarity.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(table.AssetSimilarity.Symbol, table.AssetSimilarity.SimilarSymbol).
		DO_UPDATE(
			postgres.SET(
				table.AssetSimilarity.SimilarityScore.SET(table.AssetSimilarity.EXCLUDED.SimilarityScore),
				table.AssetSimilarity.Rank.SET(table.AssetSimilarity.EXCLUDED.Rank),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert asset similarities: %w", err)
	}

	return nil
}

func (h similarityRepositoryHandler) ListForSymbol(symbol string) ([]model.AssetSimilarity, error) {
	query := table.AssetSimilarity.
		SELECT(table.AssetSimilarity.AllColumns).
		WHERE(table.AssetSimilarity.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.AssetSimilarity.Rank.ASC())

	results := []model.AssetSimilarity{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list similar assets for %s: %w", symbol, err)
	}

	return results, nil
}

func (h similarityRepositoryHandler) GetPair(a, b string) (*model.AssetSimilarity, error) {
	query := table.AssetSimilarity.
		SELECT(table.AssetSimilarity.AllColumns).
		WHERE(
			postgres.AND(
				table.AssetSimilarity.Symbol.EQ(postgres.String(a)),
				table.AssetSimilarity.SimilarSymbol.EQ(postgres.String(b)),
			),
		).
		LIMIT(1)

	out := model.AssetSimilarity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
