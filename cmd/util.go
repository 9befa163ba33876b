package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"taxharvest/api"
	"taxharvest/internal/domain"
	"taxharvest/internal/repository"
	l1_service "taxharvest/internal/service/l1"
	l2_service "taxharvest/internal/service/l2"
	l3_service "taxharvest/internal/service/l3"
	"taxharvest/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	taxConfig := domain.DefaultTaxConfig()

	tickerRepository := repository.NewTickerRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn, tickerRepository)
	priceRepository := repository.NewAdjustedPriceRepository(dbConn)
	similarityRepository := repository.NewSimilarityRepository(dbConn)

	lotAllocator := l1_service.NewLotAllocator(taxConfig)
	holdingsService := l1_service.NewHoldingsService(
		transactionRepository,
		priceRepository,
		lotAllocator,
	)

	gainsAggregator := l2_service.NewGainsAggregator()
	washSaleChecker := l2_service.NewWashSaleChecker(taxConfig)
	similarityService := l2_service.NewSimilarityService(
		similarityRepository,
		priceRepository,
		taxConfig,
	)

	gainsService := l3_service.NewGainsService(
		transactionRepository,
		lotAllocator,
		gainsAggregator,
	)
	harvestService := l3_service.NewHarvestService(
		transactionRepository,
		holdingsService,
		similarityService,
		washSaleChecker,
		taxConfig,
	)
	strategyService := l3_service.NewStrategyService(
		harvestService,
		gptRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:              dbConn,
		GainsService:    gainsService,
		HarvestService:  harvestService,
		StrategyService: strategyService,
		GptRepository:   gptRepository,
		TaxConfig:       taxConfig,
	}

	return apiHandler, nil
}
