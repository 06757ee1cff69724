package services

import (
	"context"
	"errors"

	"ecoroute/internal/models"
	"ecoroute/internal/presenter"
	"ecoroute/internal/utils"
	"ecoroute/internal/validators"
	"ecoroute/pkg/logger"
)

const apiKeyHint = "check that GEMINI_API_KEY or GOOGLE_API_KEY is set and valid"

// OptimizationService runs one route form submission end to end.
type OptimizationService interface {
	// Optimize never fails: every outcome, including backend errors, is
	// reported through the returned form state.
	Optimize(ctx context.Context, raw validators.RawFields) *models.RouteOptimizationFormState
}

type optimizationService struct {
	simulator SimulationService
	presenter presenter.Presenter
	logger    *logger.Logger
}

func NewOptimizationService(simulator SimulationService, p presenter.Presenter, log *logger.Logger) OptimizationService {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &optimizationService{
		simulator: simulator,
		presenter: p,
		logger:    log,
	}
}

func (s *optimizationService) Optimize(ctx context.Context, raw validators.RawFields) *models.RouteOptimizationFormState {
	log := s.logger.WithContext(ctx)
	requestID := logger.RequestIDFromContext(ctx)
	transition := func(from, to models.FlowState) {
		log.LogFlowTransition(requestID, string(from), string(to), nil)
	}

	transition(models.FlowStateIdle, models.FlowStateValidating)
	req, fieldErrors := validators.ValidateRouteRequest(raw)
	if fieldErrors.HasErrors() {
		transition(models.FlowStateValidating, models.FlowStateInvalid)
		transition(models.FlowStateInvalid, models.FlowStateIdle)
		log.WithField("fields", len(fieldErrors)).Info("Route form rejected")

		state := &models.RouteOptimizationFormState{
			State:       models.FlowStateIdle,
			Message:     utils.StringPtr(utils.MsgValidationFailed),
			Errors:      fieldErrors,
			Origin:      utils.NonEmptyPtr(raw.String(validators.FieldOrigin)),
			Destination: utils.NonEmptyPtr(raw.String(validators.FieldDestination)),
			VehicleType: raw.String(validators.FieldVehicleType),
		}
		return s.present(state)
	}

	transition(models.FlowStateValidating, models.FlowStateInvoking)
	result, err := s.simulator.Simulate(ctx, req)

	state := &models.RouteOptimizationFormState{
		Origin:      utils.StringPtr(req.Origin),
		Destination: utils.StringPtr(req.Destination),
		VehicleType: req.VehicleType,
	}

	if err != nil {
		transition(models.FlowStateInvoking, models.FlowStatePresentingError)
		entry := log.WithError(err)
		if !isSchemaViolation(err) {
			entry = entry.WithField("hint", apiKeyHint)
		}
		entry.Error("Route optimization failed")

		state.State = models.FlowStatePresentingError
		state.Message = utils.StringPtr(utils.MsgOptimizationFailed)
		return s.present(state)
	}

	transition(models.FlowStateInvoking, models.FlowStatePresentingSuccess)
	state.State = models.FlowStatePresentingSuccess
	state.Message = utils.StringPtr(utils.MsgOptimizationSuccess)
	state.SimulationResult = result
	return s.present(state)
}

func (s *optimizationService) present(state *models.RouteOptimizationFormState) *models.RouteOptimizationFormState {
	if s.presenter != nil {
		state.Presentation = s.presenter.Present(state)
	}
	return state
}

func isSchemaViolation(err error) bool {
	var schemaErr *SchemaValidationError
	return errors.As(err, &schemaErr)
}
