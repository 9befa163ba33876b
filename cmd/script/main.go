package main

import (
	"database/sql"
	"log"
	"os"
	"taxharvest/internal"
	"taxharvest/internal/repository"
	"taxharvest/internal/util"

	"github.com/google/uuid"

	_ "github.com/lib/pq"
)

func main() {
	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}
	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		log.Fatal(err)
	}
	defer dbConn.Close()

	updateTrackedPrices(dbConn)

	// importTransactions(dbConn, "transactions.csv")
}

func updateTrackedPrices(dbConn *sql.DB) {
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}

	tickerRepository := repository.NewTickerRepository(dbConn)
	priceRepository := repository.NewAdjustedPriceRepository(dbConn)

	err = internal.UpdateTrackedPrices(tx, tickerRepository, priceRepository)
	if err != nil {
		log.Fatal(err)
	}
	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}
}

func importTransactions(dbConn *sql.DB, filePath string) {
	accountID := uuid.New()
	if fromEnv := os.Getenv("HARVEST_ACCOUNT_ID"); fromEnv != "" {
		accountID = uuid.MustParse(fromEnv)
	}

	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}

	tickerRepository := repository.NewTickerRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn, tickerRepository)

	n, err := internal.IngestTransactionsCsv(tx, filePath, accountID, tickerRepository, transactionRepository)
	if err != nil {
		log.Fatal(err)
	}
	err = tx.Commit()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("imported %d transactions from %s", n, filePath)
}
