package services

import (
	"context"
	"strings"
	"sync"

	"ecoroute/internal/models"
	"ecoroute/internal/validators"
	"ecoroute/pkg/logger"

	"github.com/google/uuid"
)

// FleetService manages the in-memory vehicle list.
type FleetService interface {
	ListVehicles(ctx context.Context) []*models.Vehicle
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	// CreateVehicle and UpdateVehicle return validators.FieldErrors when the
	// input is rejected.
	CreateVehicle(ctx context.Context, input *validators.VehicleInput) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, input *validators.VehicleInput) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	CountVehicles(ctx context.Context) int
}

type fleetService struct {
	mu       sync.RWMutex
	vehicles map[string]*models.Vehicle
	order    []string
	newID    func() string
	logger   *logger.Logger
}

// InitialVehicles is the fleet every process starts with.
func InitialVehicles() []*models.Vehicle {
	return []*models.Vehicle{
		{ID: "1", Name: "Eco Van 1", Type: models.VehicleTypeVan, Capacity: 1200, HealthStatus: models.HealthStatusGood, FuelType: models.FuelTypeElectric, Registration: "EV001", PurchaseDate: "2023-05-10"},
		{ID: "2", Name: "Green Truck", Type: models.VehicleTypeTruckLight, Capacity: 3000, HealthStatus: models.HealthStatusMaintenanceSoon, FuelType: models.FuelTypeDiesel, Registration: "GT002", PurchaseDate: "2022-11-20"},
		{ID: "3", Name: "City Runner", Type: models.VehicleTypeCar, Capacity: 300, HealthStatus: models.HealthStatusGood, FuelType: models.FuelTypeHybrid, Registration: "CR003", PurchaseDate: "2024-01-15"},
	}
}

func NewFleetService(seed []*models.Vehicle, log *logger.Logger) FleetService {
	if log == nil {
		log = logger.NewDiscard()
	}
	s := &fleetService{
		vehicles: make(map[string]*models.Vehicle, len(seed)),
		newID:    func() string { return uuid.New().String() },
		logger:   log,
	}
	for _, v := range seed {
		vehicle := *v
		s.vehicles[vehicle.ID] = &vehicle
		s.order = append(s.order, vehicle.ID)
	}
	return s
}

func (s *fleetService) ListVehicles(ctx context.Context) []*models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Vehicle, 0, len(s.order))
	for _, id := range s.order {
		vehicle := *s.vehicles[id]
		out = append(out, &vehicle)
	}
	return out
}

func (s *fleetService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vehicles[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	vehicle := *v
	return &vehicle, nil
}

func (s *fleetService) CreateVehicle(ctx context.Context, input *validators.VehicleInput) (*models.Vehicle, error) {
	normalizeVehicleInput(input)
	if errs := validators.ValidateVehicle(input); errs.HasErrors() {
		return nil, errs
	}

	vehicle := vehicleFromInput(s.newID(), input)

	s.mu.Lock()
	s.vehicles[vehicle.ID] = vehicle
	s.order = append(s.order, vehicle.ID)
	s.mu.Unlock()

	s.logger.WithContext(ctx).LogFleetEvent(vehicle.ID, "vehicle_created", map[string]interface{}{
		"name": vehicle.Name,
		"kind": string(vehicle.Type),
	})

	out := *vehicle
	return &out, nil
}

func (s *fleetService) UpdateVehicle(ctx context.Context, id string, input *validators.VehicleInput) (*models.Vehicle, error) {
	normalizeVehicleInput(input)
	if errs := validators.ValidateVehicle(input); errs.HasErrors() {
		return nil, errs
	}

	s.mu.Lock()
	if _, ok := s.vehicles[id]; !ok {
		s.mu.Unlock()
		return nil, ErrVehicleNotFound
	}
	vehicle := vehicleFromInput(id, input)
	s.vehicles[id] = vehicle
	s.mu.Unlock()

	s.logger.WithContext(ctx).LogFleetEvent(id, "vehicle_updated", map[string]interface{}{
		"health_status": string(vehicle.HealthStatus),
	})

	out := *vehicle
	return &out, nil
}

func (s *fleetService) DeleteVehicle(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.vehicles[id]; !ok {
		s.mu.Unlock()
		return ErrVehicleNotFound
	}
	delete(s.vehicles, id)
	if idx := indexOf(s.order, id); idx >= 0 {
		s.order = append(s.order[:idx], s.order[idx+1:]...)
	}
	s.mu.Unlock()

	s.logger.WithContext(ctx).LogFleetEvent(id, "vehicle_deleted", nil)
	return nil
}

func (s *fleetService) CountVehicles(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}

func normalizeVehicleInput(input *validators.VehicleInput) {
	input.Name = strings.TrimSpace(input.Name)
	input.Registration = strings.TrimSpace(input.Registration)
	input.PurchaseDate = strings.TrimSpace(input.PurchaseDate)
	if input.HealthStatus == "" {
		input.HealthStatus = string(models.HealthStatusGood)
	}
}

func vehicleFromInput(id string, input *validators.VehicleInput) *models.Vehicle {
	return &models.Vehicle{
		ID:           id,
		Name:         input.Name,
		Type:         models.VehicleType(input.Type),
		Capacity:     input.Capacity,
		HealthStatus: models.HealthStatus(input.HealthStatus),
		FuelType:     models.FuelType(input.FuelType),
		Registration: input.Registration,
		PurchaseDate: input.PurchaseDate,
	}
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
