package models

type PanelKind string

const (
	PanelEcoSuggestion   PanelKind = "eco_suggestion"
	PanelWeather         PanelKind = "weather"
	PanelTraffic         PanelKind = "traffic"
	PanelWarnings        PanelKind = "warnings"
	PanelRecommendations PanelKind = "recommendations"
)

// Panel is one optional block of the result view.
type Panel struct {
	Kind  PanelKind `json:"kind"`
	Title string    `json:"title"`
	Body  string    `json:"body,omitempty"`
	Items []string  `json:"items,omitempty"`
}

type AlertVariant string

const (
	AlertDefault     AlertVariant = "default"
	AlertDestructive AlertVariant = "destructive"
)

type Alert struct {
	Variant     AlertVariant `json:"variant"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

// Presentation is the display-ready view of a form state.
type Presentation struct {
	Alert                 *Alert  `json:"alert,omitempty"`
	RouteDescription      string  `json:"routeDescription,omitempty"`
	EstimatedDuration     string  `json:"estimatedDuration,omitempty"`
	EstimatedDistance     string  `json:"estimatedDistance,omitempty"`
	FuelConsumption       float64 `json:"fuelConsumption"`
	FuelConsumptionText   string  `json:"fuelConsumptionText,omitempty"`
	FuelUnit              string  `json:"fuelUnit,omitempty"`
	CO2Emissions          float64 `json:"co2Emissions"`
	CO2EmissionsText      string  `json:"co2EmissionsText,omitempty"`
	Panels                []Panel `json:"panels,omitempty"`
	MapEmbedURL           string  `json:"mapEmbedUrl,omitempty"`
	MapUnavailableMessage string  `json:"mapUnavailableMessage,omitempty"`
	Placeholder           string  `json:"placeholder,omitempty"`
}

// Panel returns the panel of the given kind, if rendered.
func (p *Presentation) Panel(kind PanelKind) (Panel, bool) {
	for _, panel := range p.Panels {
		if panel.Kind == kind {
			return panel, true
		}
	}
	return Panel{}, false
}
