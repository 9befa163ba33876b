package l3_service

import (
	"context"
	"fmt"
	"taxharvest/internal/domain"
	"taxharvest/internal/repository"
	l1_service "taxharvest/internal/service/l1"
	l2_service "taxharvest/internal/service/l2"

	"github.com/google/uuid"
)

type GainsService interface {
	CalculateRealizedGains(ctx context.Context, symbol string, taxYear int) (*domain.GainsAnalysis, error)
	CalculateAnnualSummary(ctx context.Context, taxYear int, accountID *uuid.UUID) (*domain.AnnualSummary, error)
}

type gainsServiceHandler struct {
	TransactionRepository repository.TransactionRepository
	LotAllocator          l1_service.LotAllocator
	GainsAggregator       l2_service.GainsAggregator
}

func NewGainsService(
	transactionRepository repository.TransactionRepository,
	lotAllocator l1_service.LotAllocator,
	gainsAggregator l2_service.GainsAggregator,
) GainsService {
	return gainsServiceHandler{
		TransactionRepository: transactionRepository,
		LotAllocator:          lotAllocator,
		GainsAggregator:       gainsAggregator,
	}
}

func validTaxYear(taxYear int) bool {
	return taxYear >= 1900 && taxYear <= 2200
}

func (h gainsServiceHandler) CalculateRealizedGains(ctx context.Context, symbol string, taxYear int) (*domain.GainsAnalysis, error) {
	if symbol == "" {
		return nil, fmt.Errorf("calculate realized gains: symbol is required: %w", domain.ErrInvalidArguments)
	}
	if !validTaxYear(taxYear) {
		return nil, fmt.Errorf("calculate realized gains: invalid tax year %d: %w", taxYear, domain.ErrInvalidArguments)
	}

	transactions, err := h.TransactionRepository.ListForSymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for %s: %w", symbol, err)
	}
	if len(transactions) == 0 {
		return nil, domain.ErrNoTransactions
	}

	buys, sells := l1_service.SplitBuysAndSells(transactions)
	allocation, err := h.LotAllocator.Allocate(ctx, buys, sells)
	if err != nil {
		return nil, err
	}

	analysis := h.GainsAggregator.AggregateYear(symbol, allocation.RealizedSales, taxYear)
	analysis.Warnings = allocation.Warnings

	return &analysis, nil
}

func (h gainsServiceHandler) CalculateAnnualSummary(ctx context.Context, taxYear int, accountID *uuid.UUID) (*domain.AnnualSummary, error) {
	if !validTaxYear(taxYear) {
		return nil, fmt.Errorf("calculate annual summary: invalid tax year %d: %w", taxYear, domain.ErrInvalidArguments)
	}

	transactions, err := h.TransactionRepository.List(repository.TransactionListFilter{
		AccountID: accountID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil, domain.ErrNoTransactions
	}

	// per-symbol allocation failures degrade to warnings; the rest of the
	// summary still computes
	allocations, err := h.LotAllocator.AllocateAll(ctx, transactions)
	if err != nil {
		return nil, err
	}

	salesBySymbol := map[string][]domain.RealizedSale{}
	warnings := []string{}
	for symbol, result := range allocations {
		salesBySymbol[symbol] = result.RealizedSales
		warnings = append(warnings, result.Warnings...)
	}

	summary := h.GainsAggregator.AnnualSummary(salesBySymbol, taxYear)
	summary.Warnings = warnings

	return &summary, nil
}
