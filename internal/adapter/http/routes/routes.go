package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "bidboard/docs" // This will be auto-generated
	"bidboard/internal/adapter/http/handlers"
	"bidboard/internal/adapter/persistence/repository"
	"bidboard/internal/infrastructure/ai"
	"bidboard/internal/infrastructure/config"
	"bidboard/internal/infrastructure/database"
	"bidboard/internal/infrastructure/seed"
	"bidboard/internal/usecase"
	"bidboard/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimate  *handlers.EstimateHandler
	Customer  *handlers.CustomerHandler
	Assistant *handlers.AssistantHandler
}

// Run will start the server
func Run(cfg config.Config) {
	h, err := buildHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(h)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with middlewares and /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.Estimate, h.Assistant)
	addCustomerRoutes(v1, h.Customer)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, error) {
	customerRepo := repository.NewCustomerMemoryRepository(seed.Customers()...)

	var estimateRepo interfaces.IEstimateRepository
	switch cfg.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Handlers{}, err
		}
		dynamoRepo := repository.NewEstimateDynamoRepository(ddb)
		if err := database.EnsureTable(ctx, ddb, dynamoRepo.TableName()); err != nil {
			return Handlers{}, err
		}
		estimateRepo = dynamoRepo
		log.Printf("[wiring] estimates backend=dynamodb table=%s", dynamoRepo.TableName())
	default:
		demo := seed.Estimates(time.Now().UTC())
		if !cfg.SeedDemoData {
			demo = nil
		}
		estimateRepo = repository.NewEstimateMemoryRepository(demo...)
		log.Printf("[wiring] estimates backend=memory seeded=%d", len(demo))
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, customerRepo, usecase.WithNegativePolicy(cfg.NegativePolicy))
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)

	var assistant interfaces.IAIAssistant
	gateway, err := ai.NewGeminiGateway(ctx, ai.GeminiOptions{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		ChatModel:   cfg.GeminiChatModel,
		MaxAttempts: cfg.AIMaxAttempts,
		Mock:        cfg.AIGatewayMock,
	})
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		assistant = gateway
	}
	assistantUseCase := usecase.NewAssistantUseCase(assistant, estimateUseCase, customerRepo, usecase.NewActiveEstimate(cfg.AIStaleGuard))

	return Handlers{
		Estimate:  handlers.NewEstimateHandler(estimateUseCase),
		Customer:  handlers.NewCustomerHandler(customerUseCase),
		Assistant: handlers.NewAssistantHandler(assistantUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
