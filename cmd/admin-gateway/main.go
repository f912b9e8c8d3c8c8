package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/creparitsdev-collab/SGI-FRONT-sub001/api/swagger"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/handler"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/middleware"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/review"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/service"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/cache"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/config"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/logger"
	corsmiddleware "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/middleware/cors"
	reqidmiddleware "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/middleware/requestid"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// @title SGI Admin Gateway
// @version 0.1.0
// @description Backend-for-frontend gateway for the SGI maintenance admin application
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	notifier := notify.New(logr, metrics)

	client := upstream.NewClient(cfg.Upstream, logr, upstream.WithObserver(metrics))
	parser := upstream.NewSessionParser(cfg.JWT.Secret, cfg.JWT.Leeway)

	var refCache *service.RefListCache
	if redisClient, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Sugar().Warnw("redis unavailable, reference list caching disabled", "error", err)
		refCache = service.NewRefListCache(nil, cfg.RefLists.CacheTTL, metrics, logr)
	} else {
		refCache = service.NewRefListCache(redisClient, cfg.RefLists.CacheTTL, metrics, logr)
	}

	registry := service.NewRegistry(client, notifier, logr)
	reviews := review.NewService(client, notifier, logr)
	exports := service.NewExportService(client, service.ExportConfig{
		Enabled: cfg.Exports.Enabled,
		MaxRows: cfg.Exports.MaxRows,
	}, logr)

	workflowHandler := handler.NewWorkflowHandler(registry, refCache)
	reviewHandler := handler.NewReviewHandler(reviews)
	maintenanceHandler := handler.NewMaintenanceHandler(client)
	referenceHandler := handler.NewReferenceHandler(client, refCache)
	noticeHandler := handler.NewNoticeHandler(client, cfg.Notices.Enabled)
	exportHandler := handler.NewExportHandler(exports)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Session(parser))
	{
		api.GET("/metrics/snapshot", metricsHandler.Snapshot)

		api.GET("/maintenance", maintenanceHandler.Mine)
		api.GET("/maintenance/created-by-me", maintenanceHandler.CreatedByMe)
		api.GET("/maintenance/assigned-to-me", maintenanceHandler.AssignedToMe)
		// The :id review routes below shadow the generic :entity wildcard
		// for the maintenance prefix, so prepare/commit get static routes.
		api.POST("/maintenance/prepare", workflowHandler.PrepareEntity("maintenance"))
		api.POST("/maintenance/commit", workflowHandler.CommitEntity("maintenance"))
		api.PUT("/maintenance/:id/status", reviewHandler.RefreshStatus)
		api.POST("/maintenance/:id/in-progress", reviewHandler.MarkInProgress)
		api.POST("/maintenance/:id/submit-for-review", reviewHandler.SubmitForReview)
		api.POST("/maintenance/:id/approve", reviewHandler.Approve)
		api.POST("/maintenance/:id/reject", reviewHandler.Reject)

		api.GET("/units-of-measurement", referenceHandler.Units)
		api.GET("/warehouse-types", referenceHandler.WarehouseTypes)
		api.GET("/notices", noticeHandler.Mine)

		api.GET("/exports/maintenance", exportHandler.Maintenance)
		api.GET("/exports/scheduled-maintenance", exportHandler.Schedule)

		api.POST("/equipment/with-maintenances", workflowHandler.CreateEquipmentWithMaintenances)

		api.GET("/:entity", workflowHandler.List)
		api.POST("/:entity/prepare", workflowHandler.Prepare)
		api.POST("/:entity/commit", workflowHandler.Commit)
		api.PATCH("/:entity/:id/toggle-status", workflowHandler.Toggle)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.ErrNotFound)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
