package api

import (
	"context"
	"fmt"
	"taxharvest/internal/domain"
	l3_service "taxharvest/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OptimizeStrategyRequest struct {
	AccountID      *string  `json:"accountID"`
	TaxRate        *float64 `json:"taxRate"`
	WithCommentary bool     `json:"withCommentary"`
}

type HarvestActionJson struct {
	Symbol                 string  `json:"symbol"`
	UnrealizedLoss         string  `json:"unrealizedLoss"`
	EstimatedTaxSavings    string  `json:"estimatedTaxSavings"`
	RecommendedReplacement *string `json:"recommendedReplacement"`
	ExecutionDate          string  `json:"executionDate"`
	WashSaleCompliant      bool    `json:"washSaleCompliant"`
	PriorityScore          string  `json:"priorityScore"`
}

type OptimizeStrategyResponse struct {
	Actions               []HarvestActionJson `json:"actions"`
	TotalEstimatedSavings string              `json:"totalEstimatedSavings"`
	ImmediateActions      []HarvestActionJson `json:"immediateActions"`
	DelayedActions        []HarvestActionJson `json:"delayedActions"`
	EarliestCompletion    string              `json:"earliestCompletion"`
	Commentary            *string             `json:"commentary,omitempty"`
}

func (m ApiHandler) optimizeStrategy(c *gin.Context) {
	var requestBody OptimizeStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var accountID *uuid.UUID
	if requestBody.AccountID != nil {
		id, err := uuid.Parse(*requestBody.AccountID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid account id: %w", err), c, 400)
			return
		}
		accountID = &id
	}

	taxRate := decimal.Zero
	if requestBody.TaxRate != nil {
		if *requestBody.TaxRate < 0 || *requestBody.TaxRate > 1 {
			returnErrorJsonCode(fmt.Errorf("tax rate must be in [0, 1]"), c, 400)
			return
		}
		taxRate = decimal.NewFromFloat(*requestBody.TaxRate)
	}

	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	strategy, err := m.StrategyService.Optimize(ctx, l3_service.OptimizeInput{
		AccountID:      accountID,
		TaxRate:        taxRate,
		Config:         m.TaxConfig,
		WithCommentary: requestBody.WithCommentary,
	})
	if err != nil {
		returnServiceErrorJson(err, c)
		return
	}

	response := OptimizeStrategyResponse{
		Actions:               actionsToJson(strategy.Actions),
		TotalEstimatedSavings: strategy.TotalEstimatedSavings.String(),
		ImmediateActions:      actionsToJson(strategy.Timeline.ImmediateActions),
		DelayedActions:        actionsToJson(strategy.Timeline.DelayedActions),
		EarliestCompletion:    strategy.Timeline.EarliestCompletion.Format("2006-01-02"),
		Commentary:            strategy.Commentary,
	}

	c.JSON(200, response)
}

func actionsToJson(actions []domain.HarvestAction) []HarvestActionJson {
	out := []HarvestActionJson{}
	for _, a := range actions {
		out = append(out, HarvestActionJson{
			Symbol:                 a.Symbol,
			UnrealizedLoss:         a.UnrealizedLoss.String(),
			EstimatedTaxSavings:    a.EstimatedTaxSavings.String(),
			RecommendedReplacement: a.RecommendedReplacement,
			ExecutionDate:          a.ExecutionDate.Format("2006-01-02"),
			WashSaleCompliant:      a.WashSaleCompliant,
			PriorityScore:          a.PriorityScore.String(),
		})
	}
	return out
}
