package routes

import (
	"ecoroute/internal/handlers"
	"ecoroute/internal/middleware"
	"ecoroute/pkg/cache"
	"ecoroute/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Route  *handlers.RouteHandler
	Fleet  *handlers.FleetHandler
	Report *handlers.ReportHandler
	Health *handlers.HealthHandler
}

// NewRouter builds the gin engine with global middleware and all /api/v1 routes.
func NewRouter(h *Handlers, guard cache.Guard, log *logger.Logger, trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}

	// Global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)
		SetupRouteRoutes(v1, h.Route, middleware.SubmissionGuard(guard, log))
		SetupFleetRoutes(v1, h.Fleet)
		SetupReportRoutes(v1, h.Report)
	}

	return router, nil
}
