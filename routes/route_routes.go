package routes

import (
	"ecoroute/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRouteRoutes sets up route optimization and form option routes
func SetupRouteRoutes(r *gin.RouterGroup, routeHandler *handlers.RouteHandler, submissionGuard gin.HandlerFunc) {
	optimization := r.Group("/routes")
	{
		optimization.POST("/optimize", submissionGuard, routeHandler.OptimizeRoute)
		optimization.POST("/prompt", routeHandler.RenderPrompt)
	}

	r.GET("/eco-options", routeHandler.GetEcoOptions)
	r.GET("/vehicle-types", routeHandler.GetVehicleTypes)
	r.GET("/form-options", routeHandler.GetFormOptions)
}
