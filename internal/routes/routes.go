package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"maternal-screening-server/internal/collector"
	"maternal-screening-server/internal/config"
	"maternal-screening-server/internal/handlers"
	"maternal-screening-server/internal/metrics"
	"maternal-screening-server/internal/prediction"
	"maternal-screening-server/internal/utils"
)

// SetupRoutes configures the application routes. Metrics are registered on reg
// and served from it.
func SetupRoutes(router *gin.Engine, cfg *config.Config, logger zerolog.Logger, reg *prometheus.Registry) {
	m := metrics.New(reg)
	predictor := prediction.NewClient(cfg.Prediction, nil, logger, m)
	drafts := collector.NewDraftSigner(cfg.Draft)

	healthRiskHandler := handlers.NewHealthRiskHandler(predictor, drafts, logger, m)
	depressionHandler := handlers.NewDepressionHandler(predictor, drafts, logger, m)

	api := router.Group("/api/v1")
	{
		// One-shot submissions of a complete record
		api.POST("/predict-health-risk", healthRiskHandler.Predict)
		api.POST("/predict-depression", depressionHandler.Predict)

		forms := api.Group("/forms")
		registerForm(forms, string(healthRiskHandler.Kind()), healthRiskHandler)
		registerForm(forms, string(depressionHandler.Kind()), depressionHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	router.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Resource not found")
	})
}

type formHandler interface {
	Schema(c *gin.Context)
	StartDraft(c *gin.Context)
	UpdateDraft(c *gin.Context)
	SubmitDraft(c *gin.Context)
}

func registerForm(forms *gin.RouterGroup, kind string, h formHandler) {
	form := forms.Group("/" + kind)
	{
		form.GET("", h.Schema)
		form.POST("/drafts", h.StartDraft)
		form.PATCH("/drafts", h.UpdateDraft)
		form.POST("/drafts/submit", h.SubmitDraft)
	}
}
