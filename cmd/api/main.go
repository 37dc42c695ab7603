package main

import (
	"fmt"
	"net/http"
	"os"

	"stockfolio/internal/config"
	"stockfolio/internal/database"
	"stockfolio/internal/handlers"
	"stockfolio/internal/logger"
	"stockfolio/internal/middleware"
	"stockfolio/internal/services"
	"stockfolio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stockfolio/internal/docs" // Import swagger docs
)

// @title           Stockfolio API
// @version         1.0
// @description     Stockfolio is a stock-broking portfolio tracker: it manages tradable instruments, savings goals, and an append-only trade log.

// @host      localhost:8080
// @BasePath  /

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	instrumentService := services.NewInstrumentService(db)
	goalService := services.NewGoalService(db)
	tradeService := services.NewTradeService(db)

	// Initialize handlers
	instrumentHandler := handlers.NewInstrumentHandler(instrumentService)
	goalHandler := handlers.NewGoalHandler(goalService)
	tradeHandler := handlers.NewTradeHandler(tradeService)

	router := buildRouter(instrumentHandler, goalHandler, tradeHandler)

	log.Infof("Starting Stockfolio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

func buildRouter(instrumentHandler *handlers.InstrumentHandler, goalHandler *handlers.GoalHandler, tradeHandler *handlers.TradeHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Instrument routes
	instruments := router.Group("/instruments")
	instruments.GET("", instrumentHandler.ListInstruments)
	instruments.POST("", instrumentHandler.CreateInstrument)
	instruments.GET("/:id", instrumentHandler.GetInstrument)
	instruments.PUT("/:id", instrumentHandler.UpdateInstrument)
	instruments.DELETE("/:id", instrumentHandler.DeleteInstrument)
	instruments.POST("/:id/buy", tradeHandler.Buy)
	instruments.POST("/:id/sell", tradeHandler.Sell)

	// Goal routes
	goals := router.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Trade log routes
	router.GET("/trade-log", tradeHandler.ListTradeLog)

	return router
}
