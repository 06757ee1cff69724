package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ecoroute/internal/models"
	"ecoroute/internal/prompt"
	"ecoroute/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
  "optimizedRouteDescription": "Take Main St north, then Oak Ave east.",
  "estimatedDuration": "25 minutes",
  "estimatedDistance": "14 km",
  "estimatedFuelConsumption": 1.8,
  "estimatedCO2Emissions": 4.7,
  "weatherForecastImpact": "Light rain may slow traffic.",
  "trafficConsiderations": "",
  "routeWarnings": ["Low emission zone downtown"],
  "otherRecommendations": []
}`

func testRequest() *models.RouteRequest {
	return &models.RouteRequest{
		Origin:                      "123 Main St, Anytown",
		Destination:                 "456 Oak Ave, Otherville",
		VehicleCapacityKg:           1000,
		VehicleType:                 "Van",
		EnvironmentalConsiderations: "Low Emission Zones",
		PreferredEcoOption:          models.EcoOptionStandard,
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 7, 15, 8, 30, 0, 0, time.FixedZone("CEST", 2*3600))
}

func TestSimulate_Success(t *testing.T) {
	provider := llm.NewMockProvider(validReply)
	svc := NewSimulationService(provider, nil, WithClock(fixedClock))

	result, err := svc.Simulate(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Take Main St north, then Oak Ave east.", result.OptimizedRouteDescription)
	assert.Equal(t, 4.7, result.CO2Emissions())
	assert.GreaterOrEqual(t, result.CO2Emissions(), 0.0)
	assert.Equal(t, []string{"Low emission zone downtown"}, result.RouteWarnings)
	assert.Empty(t, result.OtherRecommendations)
	assert.NotEmpty(t, result.EcoFriendlySuggestion, "missing suggestion is filled from the decision table")

	require.Equal(t, 1, provider.Calls())
	sent := provider.Requests()[0]
	assert.Equal(t, prompt.SystemInstruction, sent.SystemInstruction)
	require.NotNil(t, sent.Schema)
	assert.Len(t, sent.Schema.Properties, len(prompt.OutputFields))
}

func TestSimulate_InjectsDepartureTime(t *testing.T) {
	provider := llm.NewMockProvider(validReply)
	svc := NewSimulationService(provider, nil, WithClock(fixedClock))

	req := testRequest()
	_, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	sent := provider.Requests()[0].Prompt
	assert.Contains(t, sent, "Departure Time: 2024-07-15T06:30:00Z")
	assert.NotContains(t, sent, prompt.NoDepartureText)

	var stamp string
	for _, line := range strings.Split(sent, "\n") {
		if strings.HasPrefix(line, "Departure Time: ") {
			stamp = strings.TrimPrefix(line, "Departure Time: ")
		}
	}
	_, parseErr := time.Parse(time.RFC3339, stamp)
	assert.NoError(t, parseErr)
	assert.Empty(t, req.DepartureDateTime, "caller request is not mutated")
}

func TestSimulate_KeepsCallerDeparture(t *testing.T) {
	provider := llm.NewMockProvider(validReply)
	svc := NewSimulationService(provider, nil, WithClock(fixedClock))

	req := testRequest()
	req.DepartureDateTime = "2024-07-16T17:00"
	_, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, provider.Requests()[0].Prompt, "Departure Time: 2024-07-16T17:00")
}

func TestSimulate_ConfirmsElectricChoice(t *testing.T) {
	provider := llm.NewMockProvider(validReply)
	svc := NewSimulationService(provider, nil)

	req := testRequest()
	req.VehicleType = "Electric Van"
	req.PreferredEcoOption = models.EcoOptionEVOptimized

	result, err := svc.Simulate(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, provider.Requests()[0].Prompt, "Confirm this choice")
	assert.Contains(t, result.EcoFriendlySuggestion, "Excellent choice")
	assert.NotContains(t, strings.ToLower(result.EcoFriendlySuggestion), "switch")
}

func replyWithSuggestion(suggestion string) string {
	return strings.Replace(validReply, `"estimatedDistance": "14 km",`,
		`"estimatedDistance": "14 km", "ecoFriendlySuggestion": "`+suggestion+`",`, 1)
}

func TestSimulate_SuggestionMustMatchEcoChoice(t *testing.T) {
	tests := []struct {
		name        string
		vehicleType string
		option      models.EcoOption
		suggestion  string
		want        string
	}{
		{"ev owner told to switch", "Electric Van", models.EcoOptionEVOptimized,
			"Consider switching to an electric cargo bike.", "Excellent choice! Using an EV for this route minimizes direct emissions."},
		{"ev owner confirmed", "Electric Van", models.EcoOptionEVOptimized,
			"Your electric van is ideal for this trip.", "Your electric van is ideal for this trip."},
		{"diesel van may be told to switch", "Van", models.EcoOptionEVOptimized,
			"Consider switching to an electric van.", "Consider switching to an electric van."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSimulationService(llm.NewMockProvider(replyWithSuggestion(tt.suggestion)), nil)
			req := testRequest()
			req.VehicleType = tt.vehicleType
			req.PreferredEcoOption = tt.option

			result, err := svc.Simulate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.EcoFriendlySuggestion)
		})
	}
}

func TestSimulate_BackendFailure(t *testing.T) {
	cause := errors.New("dial tcp 142.250.0.1:443: connect: network is unreachable")
	svc := NewSimulationService(llm.NewFailingMockProvider(cause), nil)

	result, err := svc.Simulate(context.Background(), testRequest())
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAIInvocation)
	assert.ErrorIs(t, err, cause)

	var aiErr *AIInvocationError
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, "generate", aiErr.Op)
}

func TestSimulate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"not json", "Sorry, I cannot help with that.", "invalid JSON"},
		{"empty", "   ", "empty response"},
		{"missing description", `{"estimatedDuration":"1h","estimatedDistance":"5 km","estimatedFuelConsumption":1,"estimatedCO2Emissions":2}`, "optimizedRouteDescription"},
		{"missing co2", `{"optimizedRouteDescription":"x","estimatedDuration":"1h","estimatedDistance":"5 km","estimatedFuelConsumption":1}`, "estimatedCO2Emissions"},
		{"negative co2", `{"optimizedRouteDescription":"x","estimatedDuration":"1h","estimatedDistance":"5 km","estimatedFuelConsumption":1,"estimatedCO2Emissions":-3}`, "estimatedCO2Emissions"},
		{"wrong type", `{"optimizedRouteDescription":"x","estimatedDuration":"1h","estimatedDistance":"5 km","estimatedFuelConsumption":"lots","estimatedCO2Emissions":2}`, "estimatedFuelConsumption"},
		{"trailing data", `{"optimizedRouteDescription":"x","estimatedDuration":"1h","estimatedDistance":"5 km","estimatedFuelConsumption":1,"estimatedCO2Emissions":2} {}`, "trailing data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSimulationService(llm.NewMockProvider(tt.reply), nil)

			result, err := svc.Simulate(context.Background(), testRequest())
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrAIInvocation)

			var schemaErr *SchemaValidationError
			require.ErrorAs(t, err, &schemaErr)
			assert.Contains(t, schemaErr.Error(), tt.want)
		})
	}
}

func TestSimulate_FencedReply(t *testing.T) {
	svc := NewSimulationService(llm.NewMockProvider("```json\n"+validReply+"\n```"), nil)

	result, err := svc.Simulate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "14 km", result.EstimatedDistance)
}

func TestSimulate_RequestTimeout(t *testing.T) {
	provider := &blockingProvider{}
	svc := NewSimulationService(provider, nil, WithRequestTimeout(10*time.Millisecond))

	_, err := svc.Simulate(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrAIInvocation)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type blockingProvider struct{}

func (blockingProvider) GenerateJSON(ctx context.Context, _ *llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) Name() string { return "blocking" }
