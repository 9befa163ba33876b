package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnnualSummaryRequest struct {
	TaxYear   int     `json:"taxYear"`
	AccountID *string `json:"accountID"`
}

type AnnualSummaryResponse struct {
	TaxYear          int      `json:"taxYear"`
	TotalProceeds    string   `json:"totalProceeds"`
	NetCapitalGains  string   `json:"netCapitalGains"`
	ShortTermGains   string   `json:"shortTermGains"`
	LongTermGains    string   `json:"longTermGains"`
	TransactionCount int      `json:"transactionCount"`
	Warnings         []string `json:"warnings"`
}

func (m ApiHandler) calculateAnnualSummary(c *gin.Context) {
	var requestBody AnnualSummaryRequest
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

	summary, err := m.GainsService.CalculateAnnualSummary(c.Request.Context(), requestBody.TaxYear, accountID)
	if err != nil {
		returnServiceErrorJson(err, c)
		return
	}

	c.JSON(200, AnnualSummaryResponse{
		TaxYear:          summary.TaxYear,
		TotalProceeds:    summary.TotalProceeds.String(),
		NetCapitalGains:  summary.NetCapitalGains.String(),
		ShortTermGains:   summary.ShortTermGains.String(),
		LongTermGains:    summary.LongTermGains.String(),
		TransactionCount: summary.TransactionCount,
		Warnings:         summary.Warnings,
	})
}
