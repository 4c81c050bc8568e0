package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"maternal-screening-server/internal/config"
	"maternal-screening-server/internal/middleware"
	"maternal-screening-server/internal/routes"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	// Load environment variables; a missing .env file is fine in containers
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("LOG_LEVEL", cfg.LogLevel).Msg("invalid log level")
	}
	logger = logger.Level(level)

	logger.Info().
		Str("maternal_service", cfg.Prediction.MaternalBaseURL).
		Str("depression_service", cfg.Prediction.DepressionBaseURL).
		Msg("prediction service endpoints")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, cfg, logger, reg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", serverAddr).Msg("server running")
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
