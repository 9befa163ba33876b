package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"taxharvest/internal/domain"
	"taxharvest/internal/logger"
	"taxharvest/internal/repository"
	l3_service "taxharvest/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db              *sql.DB
	GainsService    l3_service.GainsService
	HarvestService  l3_service.HarvestService
	StrategyService l3_service.StrategyService
	GptRepository   repository.GptRepository
	TaxConfig       domain.TaxConfig
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to taxharvest"})
	})
	router.POST("/harvest/opportunities", m.identifyOpportunities)
	router.POST("/harvest/replacements", m.recommendReplacements)
	router.POST("/harvest/optimize", m.optimizeStrategy)
	router.POST("/washSale/check", m.checkWashSale)
	router.POST("/gains/realized", m.calculateRealizedGains)
	router.POST("/gains/annualSummary", m.calculateAnnualSummary)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnNoDataJson renders empty-ledger sentinels distinctly from failures so
// the frontend can say "nothing to analyze" instead of "analysis failed".
func returnNoDataJson(err error, c *gin.Context) {
	c.AbortWithStatusJSON(404, gin.H{
		"noData":  true,
		"message": err.Error(),
	})
}

func isNoDataErr(err error) bool {
	return errors.Is(err, domain.ErrNoPositions) ||
		errors.Is(err, domain.ErrNoTransactions) ||
		errors.Is(err, domain.ErrNoHoldings)
}

// returnServiceErrorJson maps service errors onto status codes: empty-ledger
// sentinels are 404, caller input errors are 400, everything else is 500.
func returnServiceErrorJson(err error, c *gin.Context) {
	switch {
	case isNoDataErr(err):
		returnNoDataJson(err, c)
	case errors.Is(err, domain.ErrInvalidArguments):
		returnErrorJsonCode(err, c, 400)
	default:
		returnErrorJson(err, c)
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	log := logger.New().With(
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"ip", ctx.ClientIP(),
	)
	ctx.Request = ctx.Request.WithContext(
		context.WithValue(ctx.Request.Context(), logger.ContextKey, log),
	)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request completed",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
