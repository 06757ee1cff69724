package models

// FlowState names where a route optimization submission ended up.
type FlowState string

const (
	FlowStateIdle              FlowState = "idle"
	FlowStateValidating        FlowState = "validating"
	FlowStateInvalid           FlowState = "invalid"
	FlowStateInvoking          FlowState = "invoking"
	FlowStatePresentingSuccess FlowState = "presenting_success"
	FlowStatePresentingError   FlowState = "presenting_error"
)

// IsTerminal reports whether no further transition follows without a new submission.
func (s FlowState) IsTerminal() bool {
	return s == FlowStatePresentingSuccess || s == FlowStatePresentingError
}

// RouteOptimizationFormState is what the route form re-renders from.
type RouteOptimizationFormState struct {
	State            FlowState              `json:"state"`
	Message          *string                `json:"message"`
	Errors           map[string][]string    `json:"errors"`
	SimulationResult *RouteSimulationResult `json:"simulationResult"`
	Origin           *string                `json:"origin"`
	Destination      *string                `json:"destination"`
	VehicleType      string                 `json:"vehicleType,omitempty"`
	Presentation     *Presentation          `json:"presentation,omitempty"`
}

// InitialFormState is the state before the first submission.
func InitialFormState() *RouteOptimizationFormState {
	return &RouteOptimizationFormState{State: FlowStateIdle}
}
