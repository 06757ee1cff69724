package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"ecoroute/internal/models"
	"ecoroute/internal/prompt"
	"ecoroute/internal/services"
	"ecoroute/internal/utils"
	"ecoroute/internal/validators"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	optimizationService services.OptimizationService
}

func NewRouteHandler(optimizationService services.OptimizationService) *RouteHandler {
	return &RouteHandler{
		optimizationService: optimizationService,
	}
}

type OptionItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FormOptions struct {
	VehicleTypes                []string     `json:"vehicleTypes"`
	EnvironmentalConsiderations []string     `json:"environmentalConsiderations"`
	EcoOptions                  []OptionItem `json:"ecoOptions"`
	HealthStatuses              []string     `json:"healthStatuses"`
	FuelTypes                   []string     `json:"fuelTypes"`
}

type RenderedPrompt struct {
	SystemInstruction string   `json:"systemInstruction"`
	Prompt            string   `json:"prompt"`
	EcoStrategy       string   `json:"ecoStrategy"`
	OutputFields      []string `json:"outputFields"`
}

// OptimizeRoute runs a route form submission. Validation failures answer 422,
// everything else 200 with the form state to render.
func (h *RouteHandler) OptimizeRoute(c *gin.Context) {
	raw, err := bindRawFields(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	// A client disconnect abandons the backend call instead of cancelling it.
	ctx := context.WithoutCancel(c.Request.Context())
	state := h.optimizationService.Optimize(ctx, raw)

	switch {
	case len(state.Errors) > 0:
		utils.FormStateResponse(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", utils.MsgValidationFailed, state, state.Errors)
	case state.State == models.FlowStatePresentingError:
		utils.FormStateResponse(c, http.StatusOK, "AI_INVOCATION_FAILED", utils.MsgOptimizationFailed, state, nil)
	default:
		utils.FormStateResponse(c, http.StatusOK, "", utils.MsgOptimizationSuccess, state, nil)
	}
}

// RenderPrompt returns the instruction that would be sent for a submission
// without calling the backend.
func (h *RouteHandler) RenderPrompt(c *gin.Context) {
	raw, err := bindRawFields(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	req, fieldErrors := validators.ValidateRouteRequest(raw)
	if fieldErrors.HasErrors() {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	rendered, err := prompt.Render(req)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "PROMPT_RENDER_FAILED", "Failed to render prompt: "+err.Error())
		return
	}

	utils.SuccessResponse(c, "Prompt rendered successfully", RenderedPrompt{
		SystemInstruction: rendered.System,
		Prompt:            rendered.Text,
		EcoStrategy:       string(rendered.Guidance.Strategy),
		OutputFields:      prompt.OutputFields,
	})
}

func (h *RouteHandler) GetEcoOptions(c *gin.Context) {
	utils.SuccessResponse(c, "Eco options retrieved successfully", ecoOptionItems())
}

func (h *RouteHandler) GetVehicleTypes(c *gin.Context) {
	utils.SuccessResponse(c, "Vehicle types retrieved successfully", vehicleTypeNames())
}

func (h *RouteHandler) GetFormOptions(c *gin.Context) {
	options := FormOptions{
		VehicleTypes:                vehicleTypeNames(),
		EnvironmentalConsiderations: utils.EnvironmentalConsiderationOptions,
		EcoOptions:                  ecoOptionItems(),
	}
	for _, status := range models.HealthStatuses {
		options.HealthStatuses = append(options.HealthStatuses, string(status))
	}
	for _, fuel := range models.FuelTypes {
		options.FuelTypes = append(options.FuelTypes, string(fuel))
	}

	utils.SuccessResponse(c, "Form options retrieved successfully", options)
}

func ecoOptionItems() []OptionItem {
	items := make([]OptionItem, 0, len(models.EcoOptions))
	for _, option := range models.EcoOptions {
		items = append(items, OptionItem{Value: string(option), Label: option.Label()})
	}
	return items
}

func vehicleTypeNames() []string {
	names := make([]string, 0, len(models.VehicleTypes))
	for _, vt := range models.VehicleTypes {
		names = append(names, string(vt))
	}
	return names
}

// bindRawFields reads a JSON object or a urlencoded/multipart form into
// untyped fields for the validator.
func bindRawFields(c *gin.Context) (validators.RawFields, error) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		raw := validators.RawFields{}
		decoder := json.NewDecoder(c.Request.Body)
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return validators.RawFields{}, nil
			}
			return nil, err
		}
		return raw, nil
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}

	raw := validators.RawFields{}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}
	return raw, nil
}
