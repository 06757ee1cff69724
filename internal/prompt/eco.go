package prompt

import (
	"fmt"
	"strings"

	"ecoroute/internal/models"
)

// CargoBikeMaxPayloadKg is the heaviest load still considered cargo-bike work.
const CargoBikeMaxPayloadKg = 250.0

// EcoStrategy names how the eco-friendly suggestion should be produced.
type EcoStrategy string

const (
	StrategyConfirmEV             EcoStrategy = "confirm_ev"
	StrategySuggestEV             EcoStrategy = "suggest_ev"
	StrategyConfirmBike           EcoStrategy = "confirm_bike"
	StrategySuggestBike           EcoStrategy = "suggest_bike"
	StrategyExplainBikeUnsuitable EcoStrategy = "explain_bike_unsuitable"
	StrategyAnalyzeAlternatives   EcoStrategy = "analyze_alternatives"
)

// EcoGuidance is the outcome of the eco decision table for one request.
type EcoGuidance struct {
	Strategy EcoStrategy
	// Directive is the instruction handed to the model.
	Directive string
	// Fallback is used verbatim when the model returns no suggestion.
	Fallback string
}

// Confirms reports whether the suggestion must endorse the user's choice
// rather than propose a different vehicle.
func (g EcoGuidance) Confirms() bool {
	return g.Strategy == StrategyConfirmEV || g.Strategy == StrategyConfirmBike
}

// switchPhrases mark a suggestion that steers the user to another vehicle.
var switchPhrases = []string{"switch", "consider using", "consider an", "consider a ", "instead of", "replace"}

// Accepts reports whether the model's suggestion can be shown as is. Empty
// suggestions are never accepted. When the user already drives an EV and asked
// for EV routing, a suggestion to change vehicles is rejected too.
func (g EcoGuidance) Accepts(suggestion string) bool {
	if strings.TrimSpace(suggestion) == "" {
		return false
	}
	if g.Strategy != StrategyConfirmEV {
		return true
	}
	lower := strings.ToLower(suggestion)
	for _, phrase := range switchPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

type ecoRule func(req *models.RouteRequest) EcoGuidance

var ecoDecisionTable = map[models.EcoOption]ecoRule{
	models.EcoOptionEVOptimized:   evRule,
	models.EcoOptionBikeOptimized: bikeRule,
	models.EcoOptionStandard:      analyzeRule,
	models.EcoOptionNotSpecified:  analyzeRule,
}

// ResolveEcoGuidance picks the suggestion strategy for req. Unknown options are
// treated as not_specified.
func ResolveEcoGuidance(req *models.RouteRequest) EcoGuidance {
	rule, ok := ecoDecisionTable[req.PreferredEcoOption]
	if !ok {
		rule = analyzeRule
	}
	return rule(req)
}

func evRule(req *models.RouteRequest) EcoGuidance {
	if req.IsElectric() {
		return EcoGuidance{
			Strategy: StrategyConfirmEV,
			Directive: fmt.Sprintf("The user asked for EV-optimized routing and the vehicle (%s) is electric. "+
				"Confirm this choice in ecoFriendlySuggestion. Do not suggest switching to a different vehicle.", req.VehicleType),
			Fallback: "Excellent choice! Using an EV for this route minimizes direct emissions.",
		}
	}
	return EcoGuidance{
		Strategy: StrategySuggestEV,
		Directive: fmt.Sprintf("The user asked for EV-optimized routing but the vehicle (%s) is not electric. "+
			"Suggest an electric alternative of similar capacity in ecoFriendlySuggestion and state the expected emission benefit.", req.VehicleType),
		Fallback: fmt.Sprintf("Consider an electric alternative to the %s for this route to cut direct CO2 emissions to zero.", req.VehicleType),
	}
}

func bikeRule(req *models.RouteRequest) EcoGuidance {
	if req.VehicleCapacityKg > CargoBikeMaxPayloadKg {
		return EcoGuidance{
			Strategy: StrategyExplainBikeUnsuitable,
			Directive: fmt.Sprintf("The user asked for bike-optimized routing but the load (%.0f kg) exceeds what a cargo bike carries (about %.0f kg). "+
				"Explain in ecoFriendlySuggestion why a cargo bike is not suitable and name the greenest workable option.", req.VehicleCapacityKg, CargoBikeMaxPayloadKg),
			Fallback: fmt.Sprintf("A cargo bike is not suitable for a %.0f kg load; an electric van is the greenest workable option.", req.VehicleCapacityKg),
		}
	}
	if models.IsCargoBikeVehicleType(req.VehicleType) {
		return EcoGuidance{
			Strategy: StrategyConfirmBike,
			Directive: "The user asked for bike-optimized routing with a cargo bike. Confirm the choice in ecoFriendlySuggestion " +
				"unless the distance makes it impractical, in which case explain why.",
			Fallback: "Great choice! A cargo bike delivers this load with zero emissions.",
		}
	}
	return EcoGuidance{
		Strategy: StrategySuggestBike,
		Directive: "The user asked for bike-optimized routing. If the distance is suitable for the load, suggest a cargo bike in " +
			"ecoFriendlySuggestion; otherwise explain why it is not.",
		Fallback: "For this load a cargo bike could be an efficient, zero-emission alternative if the distance allows.",
	}
}

func analyzeRule(req *models.RouteRequest) EcoGuidance {
	fallback := "Consider using an electric van for this route to reduce emissions."
	if req.IsElectric() {
		fallback = "Your current vehicle is already a low-emission choice for this route."
	} else if req.VehicleCapacityKg <= CargoBikeMaxPayloadKg {
		fallback = "For a short distance with this load, a cargo bike could be an efficient, zero-emission alternative."
	}
	return EcoGuidance{
		Strategy: StrategyAnalyzeAlternatives,
		Directive: "No eco preference was given beyond standard routing. Analyze the route and vehicle; if a greener option " +
			"(electric van, cargo bike) fits the load and distance, suggest it in ecoFriendlySuggestion. If the current choice is " +
			"already optimal from an eco perspective, say so.",
		Fallback: fallback,
	}
}
