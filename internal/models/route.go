package models

import "strings"

type EcoOption string

const (
	EcoOptionStandard      EcoOption = "standard"
	EcoOptionEVOptimized   EcoOption = "ev_optimized"
	EcoOptionBikeOptimized EcoOption = "bike_optimized"
	EcoOptionNotSpecified  EcoOption = "not_specified"
)

// EcoOptions lists the accepted eco options in form display order.
var EcoOptions = []EcoOption{
	EcoOptionNotSpecified,
	EcoOptionStandard,
	EcoOptionEVOptimized,
	EcoOptionBikeOptimized,
}

func (o EcoOption) IsValid() bool {
	switch o {
	case EcoOptionStandard, EcoOptionEVOptimized, EcoOptionBikeOptimized, EcoOptionNotSpecified:
		return true
	}
	return false
}

// Label is the human-readable name shown in the route form.
func (o EcoOption) Label() string {
	switch o {
	case EcoOptionStandard:
		return "Standard Route"
	case EcoOptionEVOptimized:
		return "Optimize for EV"
	case EcoOptionBikeOptimized:
		return "Optimize for Bike/Cargo Bike"
	default:
		return "Not Specified"
	}
}

// RouteRequest is a validated route optimization submission.
type RouteRequest struct {
	Origin                      string    `json:"origin"`
	Destination                 string    `json:"destination"`
	VehicleCapacityKg           float64   `json:"vehicleCapacity"`
	VehicleType                 string    `json:"vehicleType"`
	EnvironmentalConsiderations string    `json:"environmentalConsiderations"`
	PreferredEcoOption          EcoOption `json:"preferredEcoOption"`
	DepartureDateTime           string    `json:"departureDateTime,omitempty"`
	UserPreferences             string    `json:"userPreferences,omitempty"`
}

// HasDeparture reports whether the caller supplied a departure instant.
func (r *RouteRequest) HasDeparture() bool {
	return strings.TrimSpace(r.DepartureDateTime) != ""
}

func (r *RouteRequest) HasUserPreferences() bool {
	return strings.TrimSpace(r.UserPreferences) != ""
}

// IsElectric reports whether the requested vehicle type is electric.
func (r *RouteRequest) IsElectric() bool {
	return IsElectricVehicleType(r.VehicleType)
}

// RouteSimulationResult is the structured answer of the generative backend.
// Pointer numbers distinguish a missing field from an explicit zero while the
// response is being checked.
type RouteSimulationResult struct {
	OptimizedRouteDescription string   `json:"optimizedRouteDescription" validate:"required"`
	EstimatedDuration         string   `json:"estimatedDuration" validate:"required"`
	EstimatedDistance         string   `json:"estimatedDistance" validate:"required"`
	EstimatedFuelConsumption  *float64 `json:"estimatedFuelConsumption" validate:"required,gte=0"`
	EstimatedCO2Emissions     *float64 `json:"estimatedCO2Emissions" validate:"required,gte=0"`
	EcoFriendlySuggestion     string   `json:"ecoFriendlySuggestion,omitempty"`
	WeatherForecastImpact     string   `json:"weatherForecastImpact,omitempty"`
	TrafficConsiderations     string   `json:"trafficConsiderations,omitempty"`
	RouteWarnings             []string `json:"routeWarnings,omitempty"`
	OtherRecommendations      []string `json:"otherRecommendations,omitempty"`
}

func (r *RouteSimulationResult) FuelConsumption() float64 {
	if r.EstimatedFuelConsumption == nil {
		return 0
	}
	return *r.EstimatedFuelConsumption
}

func (r *RouteSimulationResult) CO2Emissions() float64 {
	if r.EstimatedCO2Emissions == nil {
		return 0
	}
	return *r.EstimatedCO2Emissions
}
