package prompt

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"ecoroute/internal/models"
)

// NoDepartureText replaces the departure time when none was supplied.
const NoDepartureText = "Not specified, assume the current time"

// SystemInstruction sets the model's role for every route simulation.
const SystemInstruction = "You are an expert logistics and transportation planner with a strong focus on sustainability. " +
	"You answer only with JSON matching the requested structure."

// OutputFields are the structured fields the model must fill, in order.
var OutputFields = []string{
	"optimizedRouteDescription",
	"estimatedDuration",
	"estimatedDistance",
	"estimatedFuelConsumption",
	"estimatedCO2Emissions",
	"ecoFriendlySuggestion",
	"weatherForecastImpact",
	"trafficConsiderations",
	"routeWarnings",
	"otherRecommendations",
}

const routeSimulationTemplate = `Based on the following information, simulate an optimized delivery route and its environmental impact.

Origin: {{.Origin}}
Destination: {{.Destination}}
Vehicle Capacity: {{.Capacity}} kg
Vehicle Type: {{.VehicleType}}
Environmental Considerations: {{.EnvironmentalConsiderations}}
Preferred Eco Option: {{.EcoOption}}
Departure Time: {{.Departure}}
{{- if .UserPreferences}}
User Preferences: {{.UserPreferences}}
{{- end}}

Fill in these fields:
- optimizedRouteDescription: the recommended route, with the main roads and turns in order.
- estimatedDuration: the expected travel time as text (for example "1 hour 25 minutes"), accounting for traffic at the departure time.
- estimatedDistance: the route length as text with units (for example "84 km").
- estimatedFuelConsumption: a number; liters for combustion engines, kWh for electric vehicles.
- estimatedCO2Emissions: a number of kilograms, never negative. Direct emissions of electric vehicles are 0 kg during operation.
- weatherForecastImpact: how the expected weather at the departure time affects this route, if at all.
- trafficConsiderations: typical congestion, roadworks or restrictions along the route at the departure time.
- routeWarnings: a list of short warnings (low emission zones, weight limits, tolls); an empty list if there are none.
- otherRecommendations: a list of further practical tips; an empty list if there are none.
- ecoFriendlySuggestion: see the rule below.

Eco-friendly suggestion rule:
{{.EcoDirective}}
Keep the suggestion concise and actionable.
`

var routeSimulation = template.Must(template.New("route_simulation").Parse(routeSimulationTemplate))

type templateData struct {
	Origin                      string
	Destination                 string
	Capacity                    string
	VehicleType                 string
	EnvironmentalConsiderations string
	EcoOption                   models.EcoOption
	Departure                   string
	UserPreferences             string
	EcoDirective                string
}

// Rendered is a filled prompt together with the eco guidance that shaped it.
type Rendered struct {
	System   string
	Text     string
	Guidance EcoGuidance
}

// Render fills the route simulation template for req. It performs no I/O and
// gives the same output for the same request.
func Render(req *models.RouteRequest) (*Rendered, error) {
	if req == nil {
		return nil, fmt.Errorf("render prompt: nil request")
	}

	guidance := ResolveEcoGuidance(req)

	data := templateData{
		Origin:                      req.Origin,
		Destination:                 req.Destination,
		Capacity:                    strconv.FormatFloat(req.VehicleCapacityKg, 'f', -1, 64),
		VehicleType:                 req.VehicleType,
		EnvironmentalConsiderations: req.EnvironmentalConsiderations,
		EcoOption:                   req.PreferredEcoOption,
		Departure:                   NoDepartureText,
		EcoDirective:                guidance.Directive,
	}
	if req.HasDeparture() {
		data.Departure = req.DepartureDateTime
	}
	if req.HasUserPreferences() {
		data.UserPreferences = req.UserPreferences
	}

	var buf bytes.Buffer
	if err := routeSimulation.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	return &Rendered{
		System:   SystemInstruction,
		Text:     buf.String(),
		Guidance: guidance,
	}, nil
}
