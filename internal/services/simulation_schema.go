package services

import "google.golang.org/genai"

// RouteSimulationSchema is the structured output contract sent with every
// route simulation request.
func RouteSimulationSchema() *genai.Schema {
	zero := 0.0
	text := func(description string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: description}
	}
	list := func(description string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: description,
			Items:       &genai.Schema{Type: genai.TypeString},
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"optimizedRouteDescription": text("The recommended route with main roads and turns in order."),
			"estimatedDuration":         text("Expected travel time, e.g. '1 hour 25 minutes'."),
			"estimatedDistance":         text("Route length with units, e.g. '84 km'."),
			"estimatedFuelConsumption": {
				Type:        genai.TypeNumber,
				Description: "Liters for combustion engines, kWh for electric vehicles.",
				Minimum:     &zero,
			},
			"estimatedCO2Emissions": {
				Type:        genai.TypeNumber,
				Description: "Kilograms of CO2; 0 for electric vehicles in operation.",
				Minimum:     &zero,
			},
			"ecoFriendlySuggestion": text("Eco-friendly alternative or confirmation of the user's eco choice."),
			"weatherForecastImpact": text("Effect of the forecast weather at departure on the route."),
			"trafficConsiderations": text("Congestion, roadworks or restrictions expected along the route."),
			"routeWarnings":         list("Short warnings such as low emission zones, weight limits or tolls."),
			"otherRecommendations":  list("Further practical recommendations."),
		},
		Required: []string{
			"optimizedRouteDescription",
			"estimatedDuration",
			"estimatedDistance",
			"estimatedFuelConsumption",
			"estimatedCO2Emissions",
		},
		PropertyOrdering: []string{
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
		},
	}
}
