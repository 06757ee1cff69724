package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecoroute/internal/models"
	"ecoroute/internal/prompt"
	"ecoroute/internal/validators"
	"ecoroute/pkg/llm"
	"ecoroute/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// SimulationService asks the generative backend for a route simulation.
type SimulationService interface {
	// Simulate makes exactly one backend call. Failures are *AIInvocationError
	// or *SchemaValidationError, both matching ErrAIInvocation.
	Simulate(ctx context.Context, req *models.RouteRequest) (*models.RouteSimulationResult, error)
}

type simulationService struct {
	provider llm.Provider
	logger   *logger.Logger
	now      func() time.Time
	timeout  time.Duration
}

type SimulationOption func(*simulationService)

// WithClock replaces time.Now for the default departure time.
func WithClock(now func() time.Time) SimulationOption {
	return func(s *simulationService) {
		s.now = now
	}
}

// WithRequestTimeout bounds each backend call. Zero keeps the transport default.
func WithRequestTimeout(timeout time.Duration) SimulationOption {
	return func(s *simulationService) {
		s.timeout = timeout
	}
}

func NewSimulationService(provider llm.Provider, log *logger.Logger, opts ...SimulationOption) SimulationService {
	if log == nil {
		log = logger.NewDiscard()
	}
	s := &simulationService{
		provider: provider,
		logger:   log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *simulationService) Simulate(ctx context.Context, req *models.RouteRequest) (*models.RouteSimulationResult, error) {
	if req == nil {
		return nil, &AIInvocationError{Op: "prepare", Cause: errors.New("nil route request")}
	}

	// The model always reasons about a concrete departure instant.
	effective := *req
	if !effective.HasDeparture() {
		effective.DepartureDateTime = s.now().UTC().Format(time.RFC3339)
	}

	rendered, err := prompt.Render(&effective)
	if err != nil {
		return nil, &AIInvocationError{Op: "render", Cause: err}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := s.provider.GenerateJSON(ctx, &llm.Request{
		Prompt:            rendered.Text,
		SystemInstruction: rendered.System,
		Schema:            RouteSimulationSchema(),
	})
	log := s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"eco_option":   string(effective.PreferredEcoOption),
		"eco_strategy": string(rendered.Guidance.Strategy),
		"departure":    effective.DepartureDateTime,
	})
	if err != nil {
		log.LogAIInvocation(s.provider.Name(), time.Since(start), 0, 0, err)
		return nil, &AIInvocationError{Op: "generate", Cause: err}
	}
	log.LogAIInvocation(s.provider.Name(), time.Since(start), response.PromptTokens, response.OutputTokens, nil)

	result, err := decodeSimulationResult(response.Text)
	if err != nil {
		log.WithError(err).Warn("AI response rejected by schema check")
		return nil, err
	}

	if !rendered.Guidance.Accepts(result.EcoFriendlySuggestion) {
		if result.EcoFriendlySuggestion != "" {
			log.WithField("suggestion", result.EcoFriendlySuggestion).Warn("AI suggestion contradicts the eco preference, using fallback")
		}
		result.EcoFriendlySuggestion = rendered.Guidance.Fallback
	}

	return result, nil
}

// decodeSimulationResult parses and checks a backend reply against the result
// schema.
func decodeSimulationResult(text string) (*models.RouteSimulationResult, error) {
	raw := llm.ExtractJSON(text)
	if raw == "" {
		return nil, &SchemaValidationError{Violations: []string{"empty response"}, Raw: text}
	}

	var result models.RouteSimulationResult
	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if err := decoder.Decode(&result); err != nil {
		return nil, &SchemaValidationError{Violations: []string{decodeViolation(err)}, Raw: text}
	}
	if decoder.More() {
		return nil, &SchemaValidationError{Violations: []string{"trailing data after JSON object"}, Raw: text}
	}

	trimResult(&result)

	if err := validators.Validator().Struct(&result); err != nil {
		var violations []string
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				violations = append(violations, schemaViolation(fe))
			}
		} else {
			violations = append(violations, err.Error())
		}
		return nil, &SchemaValidationError{Violations: violations, Raw: text}
	}

	return &result, nil
}

func decodeViolation(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	return "invalid JSON: " + err.Error()
}

func schemaViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": required field missing"
	case "gte":
		return fe.Field() + ": must be >= " + fe.Param()
	default:
		return fe.Field() + ": failed " + fe.Tag()
	}
}

func trimResult(result *models.RouteSimulationResult) {
	result.OptimizedRouteDescription = strings.TrimSpace(result.OptimizedRouteDescription)
	result.EstimatedDuration = strings.TrimSpace(result.EstimatedDuration)
	result.EstimatedDistance = strings.TrimSpace(result.EstimatedDistance)
	result.EcoFriendlySuggestion = strings.TrimSpace(result.EcoFriendlySuggestion)
	result.WeatherForecastImpact = strings.TrimSpace(result.WeatherForecastImpact)
	result.TrafficConsiderations = strings.TrimSpace(result.TrafficConsiderations)
	result.RouteWarnings = compactStrings(result.RouteWarnings)
	result.OtherRecommendations = compactStrings(result.OtherRecommendations)
}

func compactStrings(items []string) []string {
	if items == nil {
		return nil
	}
	out := items[:0]
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
