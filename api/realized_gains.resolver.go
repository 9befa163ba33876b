package api

import (
	"github.com/gin-gonic/gin"
)

type RealizedGainsRequest struct {
	Symbol  string `json:"symbol"`
	TaxYear int    `json:"taxYear"`
}

type RealizedSaleJson struct {
	SaleDate         string              `json:"saleDate"`
	Proceeds         string              `json:"proceeds"`
	CostBasis        string              `json:"costBasis"`
	RealizedGainLoss string              `json:"realizedGainLoss"`
	Allocations      []LotAllocationJson `json:"allocations"`
}

type LotAllocationJson struct {
	PurchaseDate      string `json:"purchaseDate"`
	QuantityAllocated string `json:"quantityAllocated"`
	CostBasis         string `json:"costBasis"`
	HoldingPeriodDays int    `json:"holdingPeriodDays"`
	Classification    string `json:"classification"`
}

type RealizedGainsResponse struct {
	Symbol         string             `json:"symbol"`
	TaxYear        int                `json:"taxYear"`
	Sales          []RealizedSaleJson `json:"sales"`
	TotalRealized  string             `json:"totalRealized"`
	ShortTermGains string             `json:"shortTermGains"`
	LongTermGains  string             `json:"longTermGains"`
	Warnings       []string           `json:"warnings"`
}

func (m ApiHandler) calculateRealizedGains(c *gin.Context) {
	var requestBody RealizedGainsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	analysis, err := m.GainsService.CalculateRealizedGains(c.Request.Context(), requestBody.Symbol, requestBody.TaxYear)
	if err != nil {
		returnServiceErrorJson(err, c)
		return
	}

	response := RealizedGainsResponse{
		Symbol:         analysis.Symbol,
		TaxYear:        analysis.TaxYear,
		Sales:          []RealizedSaleJson{},
		TotalRealized:  analysis.TotalRealized.String(),
		ShortTermGains: analysis.ShortTermGains.String(),
		LongTermGains:  analysis.LongTermGains.String(),
		Warnings:       analysis.Warnings,
	}
	for _, sale := range analysis.Sales {
		saleJson := RealizedSaleJson{
			SaleDate:         sale.Sale.Date.Format("2006-01-02"),
			Proceeds:         sale.TotalProceeds.String(),
			CostBasis:        sale.TotalCostBasis.String(),
			RealizedGainLoss: sale.RealizedGainLoss.String(),
			Allocations:      []LotAllocationJson{},
		}
		for _, allocation := range sale.Allocations {
			saleJson.Allocations = append(saleJson.Allocations, LotAllocationJson{
				PurchaseDate:      allocation.Lot.PurchaseDate.Format("2006-01-02"),
				QuantityAllocated: allocation.QuantityAllocated.String(),
				CostBasis:         allocation.CostBasis.String(),
				HoldingPeriodDays: allocation.HoldingPeriod.Days,
				Classification:    string(allocation.HoldingPeriod.Classification),
			})
		}
		response.Sales = append(response.Sales, saleJson)
	}

	c.JSON(200, response)
}
