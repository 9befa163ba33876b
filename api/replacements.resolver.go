package api

import (
	"github.com/gin-gonic/gin"
)

type RecommendReplacementsRequest struct {
	Symbol string `json:"symbol"`
}

type ReplacementJson struct {
	Symbol          string `json:"symbol"`
	SimilarityScore string `json:"similarityScore"`
	WashSaleSafe    bool   `json:"washSaleSafe"`
}

func (m ApiHandler) recommendReplacements(c *gin.Context) {
	var requestBody RecommendReplacementsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	replacements, err := m.HarvestService.RecommendReplacements(c.Request.Context(), requestBody.Symbol)
	if err != nil {
		returnServiceErrorJson(err, c)
		return
	}

	out := []ReplacementJson{}
	for _, r := range replacements {
		out = append(out, ReplacementJson{
			Symbol:          r.Symbol,
			SimilarityScore: r.SimilarityScore.String(),
			WashSaleSafe:    r.WashSaleSafe,
		})
	}

	c.JSON(200, gin.H{"replacements": out})
}
