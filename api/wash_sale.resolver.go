package api

import (
	"fmt"
	l3_service "taxharvest/internal/service/l3"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckWashSaleRequest struct {
	SellSymbol      string  `json:"sellSymbol"`
	BuySymbol       string  `json:"buySymbol"`
	TransactionDate string  `json:"transactionDate"`
	AccountID       *string `json:"accountID"`
}

type CheckWashSaleResponse struct {
	IsCompliant            bool     `json:"isCompliant"`
	RiskFactors            []string `json:"riskFactors"`
	SafeDate               string   `json:"safeDate"`
	SimilarityScore        string   `json:"similarityScore"`
	SubstantiallyIdentical bool     `json:"substantiallyIdentical"`
}

func (m ApiHandler) checkWashSale(c *gin.Context) {
	var requestBody CheckWashSaleRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	txDate, err := time.Parse("2006-01-02", requestBody.TransactionDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid transaction date: %w", err), c, 400)
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

	result, err := m.HarvestService.CheckCompliance(c.Request.Context(), l3_service.ComplianceInput{
		SellSymbol:      requestBody.SellSymbol,
		BuySymbol:       requestBody.BuySymbol,
		TransactionDate: txDate,
		AccountID:       accountID,
	})
	if err != nil {
		returnServiceErrorJson(err, c)
		return
	}

	c.JSON(200, CheckWashSaleResponse{
		IsCompliant:            result.IsCompliant,
		RiskFactors:            result.RiskFactors,
		SafeDate:               result.SafeDate.Format("2006-01-02"),
		SimilarityScore:        result.Similarity.Score.String(),
		SubstantiallyIdentical: result.Similarity.SubstantiallyIdentical,
	})
}
