package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nederlandse-workbook/learning-service/internal/cache"
	"github.com/nederlandse-workbook/learning-service/internal/config"
	"github.com/nederlandse-workbook/learning-service/internal/handlers"
	"github.com/nederlandse-workbook/learning-service/internal/repositories/postgres"
	"github.com/nederlandse-workbook/learning-service/internal/services"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
	"github.com/nederlandse-workbook/learning-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.LogError(err, "Failed to connect to redis")
		os.Exit(1)
	}
	defer redisClient.Close()

	publisher, err := cfg.Events.CreateActivityPublisher(slogger)
	if err != nil {
		logger.LogError(err, "Failed to create activity publisher")
		os.Exit(1)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	store := cache.NewRedisProgressStore(redisClient, cfg.QuizIdleTTL)
	validator := utils.NewValidator()

	serviceManager := services.NewServiceManager(repo, store, publisher, slogger, validator)
	handlerManager := handlers.NewHandlerManager(serviceManager, cfg.Auth, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))
	handlerManager.SetupRoutes(router)

	logger.Info("Starting learning service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.LogError(err, "Server stopped")
		os.Exit(1)
	}
}
