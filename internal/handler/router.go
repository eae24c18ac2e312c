package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"treesync/internal/handler/api"
	"treesync/internal/handler/middleware"
	"treesync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	syncHandler *api.SyncHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, syncHandler, orderHandler, webhookHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewRequestLogger(logger).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	syncHandler *api.SyncHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		accounts := apiGroup.Group("/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodPost, Path: "/:id/sync", Handler: syncHandler.Run},
				{Method: http.MethodPost, Path: "/:id/discover", Handler: syncHandler.Discover},
				{Method: http.MethodGet, Path: "/:id/orders", Handler: orderHandler.ListByAccount},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/webhooks/:pmsType", Handler: webhookHandler.Receive},
			{Method: http.MethodPost, Path: "/cron/retry-webhooks", Handler: webhookHandler.RetryFailed},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
