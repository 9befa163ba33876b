package api

import (
	"fmt"
	l3_service "taxharvest/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IdentifyOpportunitiesRequest struct {
	AccountID     *string  `json:"accountID"`
	LossThreshold *float64 `json:"lossThreshold"`
	MarginalRate  *float64 `json:"marginalRate"`
}

type IdentifyOpportunitiesResponse struct {
	Opportunities          []HarvestOpportunityJson `json:"opportunities"`
	TotalHarvestableLosses string                   `json:"totalHarvestableLosses"`
	EstimatedTaxSavings    string                   `json:"estimatedTaxSavings"`
}

type HarvestOpportunityJson struct {
	Symbol             string   `json:"symbol"`
	UnrealizedLoss     string   `json:"unrealizedLoss"`
	CurrentValue       string   `json:"currentValue"`
	TaxBenefit         string   `json:"taxBenefit"`
	WashSaleRisk       bool     `json:"washSaleRisk"`
	ReplacementOptions []string `json:"replacementOptions"`
	PriorityScore      string   `json:"priorityScore"`
}

func (m ApiHandler) identifyOpportunities(c *gin.Context) {
	var requestBody IdentifyOpportunitiesRequest
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

	config := m.TaxConfig
	if requestBody.LossThreshold != nil {
		if *requestBody.LossThreshold < 0 {
			returnErrorJsonCode(fmt.Errorf("loss threshold must be >= 0"), c, 400)
			return
		}
		config.MinimumLossThreshold = decimal.NewFromFloat(*requestBody.LossThreshold)
	}
	if requestBody.MarginalRate != nil {
		config.MarginalTaxRate = decimal.NewFromFloat(*requestBody.MarginalRate)
	}

	report, err := m.HarvestService.IdentifyOpportunities(c.Request.Context(), l3_service.IdentifyInput{
		AccountID: accountID,
		Config:    config,
	})
	if err != nil {
		returnServiceErrorJson(err, c)
		return
	}

	response := IdentifyOpportunitiesResponse{
		Opportunities:          []HarvestOpportunityJson{},
		TotalHarvestableLosses: report.TotalHarvestableLosses.String(),
		EstimatedTaxSavings:    report.EstimatedTaxSavings.String(),
	}
	for _, o := range report.Opportunities {
		response.Opportunities = append(response.Opportunities, HarvestOpportunityJson{
			Symbol:             o.Symbol,
			UnrealizedLoss:     o.UnrealizedLoss.String(),
			CurrentValue:       o.CurrentValue.String(),
			TaxBenefit:         o.TaxBenefit.String(),
			WashSaleRisk:       o.WashSaleRisk,
			ReplacementOptions: o.ReplacementOptions,
			PriorityScore:      o.PriorityScore.String(),
		})
	}

	c.JSON(200, response)
}
