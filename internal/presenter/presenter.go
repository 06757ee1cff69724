package presenter

import (
	"strings"

	"ecoroute/internal/models"
	"ecoroute/internal/utils"
	"ecoroute/pkg/logger"
	"ecoroute/pkg/maps"
)

const (
	AlertTitleComplete = "Optimization Complete"
	AlertTitleFailed   = "Optimization Failed"
	AlertTitleError    = "Error"

	MapMissingEndpoints = "Map data unavailable (origin/destination missing)."
	MapMissingKey       = "Map unavailable (Google Maps API key not configured)."
	ResultPlaceholder   = "Your optimized route and map will appear here."

	FuelUnitLitres = "L"
	FuelUnitKWh    = "kWh"
)

var panelTitles = map[models.PanelKind]string{
	models.PanelEcoSuggestion:   "Eco-Friendly Suggestion",
	models.PanelWeather:         "Weather Forecast Impact",
	models.PanelTraffic:         "Traffic Considerations",
	models.PanelWarnings:        "Route Warnings",
	models.PanelRecommendations: "Other Recommendations",
}

// Presenter turns a form state into display fields.
type Presenter interface {
	Present(state *models.RouteOptimizationFormState) *models.Presentation
	MapEmbedURL(origin, destination string) (string, bool)
}

type Config struct {
	MapsAPIKey   string
	EmbedBaseURL string
}

type presenter struct {
	embed  maps.EmbedProvider
	logger *logger.Logger
}

func NewPresenter(cfg Config, log *logger.Logger) Presenter {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &presenter{
		embed:  maps.NewGoogleMapsEmbed(cfg.MapsAPIKey, cfg.EmbedBaseURL),
		logger: log,
	}
}

func (p *presenter) Present(state *models.RouteOptimizationFormState) *models.Presentation {
	view := &models.Presentation{}
	if state == nil {
		view.Placeholder = ResultPlaceholder
		return view
	}

	view.Alert = buildAlert(state)

	result := state.SimulationResult
	if result == nil {
		view.Placeholder = ResultPlaceholder
		return view
	}

	view.RouteDescription = result.OptimizedRouteDescription
	view.EstimatedDuration = result.EstimatedDuration
	view.EstimatedDistance = result.EstimatedDistance

	view.FuelConsumption = utils.RoundTo(result.FuelConsumption(), 2)
	view.FuelConsumptionText = utils.FormatFixed(result.FuelConsumption(), 2)
	view.FuelUnit = FuelUnit(state.VehicleType)
	view.CO2Emissions = utils.RoundTo(result.CO2Emissions(), 2)
	view.CO2EmissionsText = utils.FormatFixed(result.CO2Emissions(), 2)

	view.Panels = buildPanels(result)

	origin, destination := deref(state.Origin), deref(state.Destination)
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		view.MapUnavailableMessage = MapMissingEndpoints
		return view
	}
	if embed, ok := p.MapEmbedURL(origin, destination); ok {
		view.MapEmbedURL = embed
	} else {
		p.logger.Debug("Map embed skipped, GOOGLE_MAPS_API_KEY not set")
		view.MapUnavailableMessage = MapMissingKey
	}

	return view
}

// MapEmbedURL builds the directions embed URL. It reports false when no maps
// key is configured or an endpoint is blank.
func (p *presenter) MapEmbedURL(origin, destination string) (string, bool) {
	return p.embed.DirectionsEmbedURL(origin, destination)
}

// FuelUnit is kWh for electric vehicle types and litres otherwise.
func FuelUnit(vehicleType string) string {
	if models.IsElectricVehicleType(vehicleType) {
		return FuelUnitKWh
	}
	return FuelUnitLitres
}

func buildAlert(state *models.RouteOptimizationFormState) *models.Alert {
	message := deref(state.Message)
	if message == "" {
		return nil
	}
	if len(state.Errors) > 0 {
		return &models.Alert{Variant: models.AlertDestructive, Title: AlertTitleError, Description: message}
	}
	if state.SimulationResult != nil {
		return &models.Alert{Variant: models.AlertDefault, Title: AlertTitleComplete, Description: message}
	}
	return &models.Alert{Variant: models.AlertDestructive, Title: AlertTitleFailed, Description: message}
}

func buildPanels(result *models.RouteSimulationResult) []models.Panel {
	var panels []models.Panel
	addText := func(kind models.PanelKind, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		panels = append(panels, models.Panel{Kind: kind, Title: panelTitles[kind], Body: body})
	}
	addList := func(kind models.PanelKind, items []string) {
		if len(items) == 0 {
			return
		}
		panels = append(panels, models.Panel{Kind: kind, Title: panelTitles[kind], Items: append([]string(nil), items...)})
	}

	addText(models.PanelEcoSuggestion, result.EcoFriendlySuggestion)
	addText(models.PanelWeather, result.WeatherForecastImpact)
	addText(models.PanelTraffic, result.TrafficConsiderations)
	addList(models.PanelWarnings, result.RouteWarnings)
	addList(models.PanelRecommendations, result.OtherRecommendations)
	return panels
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
