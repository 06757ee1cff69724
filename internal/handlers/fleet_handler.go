package handlers

import (
	"errors"
	"net/http"

	"ecoroute/internal/services"
	"ecoroute/internal/utils"
	"ecoroute/internal/validators"

	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	fleetService services.FleetService
}

func NewFleetHandler(fleetService services.FleetService) *FleetHandler {
	return &FleetHandler{
		fleetService: fleetService,
	}
}

func (h *FleetHandler) ListVehicles(c *gin.Context) {
	vehicles := h.fleetService.ListVehicles(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, &utils.Meta{Count: len(vehicles)})
}

func (h *FleetHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.fleetService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "VEHICLE_FETCH_FAILED")
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

func (h *FleetHandler) CreateVehicle(c *gin.Context) {
	var input validators.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, err := h.fleetService.CreateVehicle(c.Request.Context(), &input)
	if err != nil {
		h.handleError(c, err, "VEHICLE_CREATE_FAILED")
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}

func (h *FleetHandler) UpdateVehicle(c *gin.Context) {
	var input validators.VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, err := h.fleetService.UpdateVehicle(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.handleError(c, err, "VEHICLE_UPDATE_FAILED")
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", vehicle)
}

func (h *FleetHandler) DeleteVehicle(c *gin.Context) {
	if err := h.fleetService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "VEHICLE_DELETE_FAILED")
		return
	}

	utils.NoContentResponse(c)
}

func (h *FleetHandler) handleError(c *gin.Context, err error, code string) {
	var fieldErrors validators.FieldErrors
	switch {
	case errors.Is(err, services.ErrVehicleNotFound):
		utils.NotFoundResponse(c, "Vehicle")
	case errors.As(err, &fieldErrors):
		utils.ValidationErrorResponse(c, fieldErrors)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, code, err.Error())
	}
}
