package routes

import (
	"ecoroute/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupFleetRoutes sets up vehicle management routes
func SetupFleetRoutes(r *gin.RouterGroup, fleetHandler *handlers.FleetHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", fleetHandler.ListVehicles)
		vehicles.POST("", fleetHandler.CreateVehicle)
		vehicles.GET("/:id", fleetHandler.GetVehicle)
		vehicles.PUT("/:id", fleetHandler.UpdateVehicle)
		vehicles.DELETE("/:id", fleetHandler.DeleteVehicle)
	}
}
