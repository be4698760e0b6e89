package routes

import (
	"bidboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathPipeline  = "/pipeline"
	PathCustomers = "/customers"
	PathSession   = "/session"
	PathAI        = "/ai"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, assistantHandler *handlers.AssistantHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateEstimateFields)
		estimates.PATCH("/:id/status", estimateHandler.SetStatus)

		estimates.POST("/:id/line-items", estimateHandler.AddLineItem)
		estimates.POST("/:id/line-items/import", estimateHandler.ImportLineItems)
		estimates.PATCH("/:id/line-items/:item_id", estimateHandler.UpdateLineItem)
		estimates.DELETE("/:id/line-items/:item_id", estimateHandler.RemoveLineItem)

		estimates.POST("/:id/ai/audit", assistantHandler.AuditEstimate)
		estimates.POST("/:id/ai/suggestions", assistantHandler.SuggestMaterials)
		estimates.POST("/:id/ai/suggestions/apply", assistantHandler.ApplySuggestion)
		estimates.POST("/:id/ai/scan", assistantHandler.ScanDocument)
		estimates.POST("/:id/ai/market", assistantHandler.MarketIntelligence)
	}

	pipeline := rg.Group(PathPipeline)
	{
		pipeline.GET("/board", estimateHandler.GetBoard)
		pipeline.GET("/stats", estimateHandler.GetStats)
	}

	session := rg.Group(PathSession)
	{
		session.GET("/active-estimate", assistantHandler.GetActiveEstimate)
		session.PUT("/active-estimate", assistantHandler.SelectActiveEstimate)
	}

	ai := rg.Group(PathAI)
	{
		ai.POST("/site-reports", assistantHandler.GenerateSiteReport)
		ai.POST("/sales-advice", assistantHandler.SalesAdvice)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
	}
}
