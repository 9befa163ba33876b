package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SimilarityAssessment struct {
	// Score is in [0, 1]. 1 means the same security.
	Score                  decimal.Decimal
	SubstantiallyIdentical bool
}

type ComplianceResult struct {
	IsCompliant bool
	RiskFactors []string
	// SafeDate is the earliest date a repurchase avoids the wash-sale
	// window. Equal to the evaluation time when trading is already safe.
	SafeDate   time.Time
	Similarity SimilarityAssessment
}

type HarvestOpportunity struct {
	Symbol             string
	UnrealizedLoss     decimal.Decimal
	CurrentValue       decimal.Decimal
	TaxBenefit         decimal.Decimal
	WashSaleRisk       bool
	ReplacementOptions []string
	PriorityScore      decimal.Decimal
}

type HarvestReport struct {
	Opportunities          []HarvestOpportunity
	TotalHarvestableLosses decimal.Decimal
	EstimatedTaxSavings    decimal.Decimal
}

type HarvestAction struct {
	Symbol                 string
	UnrealizedLoss         decimal.Decimal
	EstimatedTaxSavings    decimal.Decimal
	RecommendedReplacement *string
	ExecutionDate          time.Time
	WashSaleCompliant      bool
	PriorityScore          decimal.Decimal
}

type ExecutionTimeline struct {
	ImmediateActions   []HarvestAction
	DelayedActions     []HarvestAction
	EarliestCompletion time.Time
}

type HarvestStrategy struct {
	Actions               []HarvestAction
	TotalEstimatedSavings decimal.Decimal
	Timeline              ExecutionTimeline
	Commentary            *string
}
