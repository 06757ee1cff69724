package services

import (
	"context"
	"sync"
	"testing"

	"ecoroute/internal/models"
	"ecoroute/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vehicleInput() *validators.VehicleInput {
	return &validators.VehicleInput{
		Name:         "Cargo Courier",
		Type:         string(models.VehicleTypeCargoBike),
		Capacity:     180,
		HealthStatus: string(models.HealthStatusGood),
		FuelType:     string(models.FuelTypeElectric),
		Registration: "CB004",
		PurchaseDate: "2024-06-01",
	}
}

func TestFleetService_Seed(t *testing.T) {
	svc := NewFleetService(InitialVehicles(), nil)
	ctx := context.Background()

	vehicles := svc.ListVehicles(ctx)
	require.Len(t, vehicles, 3)
	assert.Equal(t, "Eco Van 1", vehicles[0].Name)
	assert.Equal(t, "City Runner", vehicles[2].Name)
	assert.Equal(t, 3, svc.CountVehicles(ctx))

	vehicles[0].Name = "mutated"
	got, err := svc.GetVehicle(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Eco Van 1", got.Name, "callers receive copies")
}

func TestFleetService_CRUD(t *testing.T) {
	svc := NewFleetService(InitialVehicles(), nil)
	ctx := context.Background()

	created, err := svc.CreateVehicle(ctx, vehicleInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.VehicleTypeCargoBike, created.Type)
	assert.Equal(t, 4, svc.CountVehicles(ctx))

	update := vehicleInput()
	update.HealthStatus = string(models.HealthStatusNeedsRepair)
	updated, err := svc.UpdateVehicle(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusNeedsRepair, updated.HealthStatus)

	require.NoError(t, svc.DeleteVehicle(ctx, "2"))
	ids := []string{}
	for _, v := range svc.ListVehicles(ctx) {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"1", "3", created.ID}, ids)

	_, err = svc.GetVehicle(ctx, "2")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.ErrorIs(t, svc.DeleteVehicle(ctx, "2"), ErrVehicleNotFound)
	_, err = svc.UpdateVehicle(ctx, "missing", vehicleInput())
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestFleetService_RejectsInvalidInput(t *testing.T) {
	svc := NewFleetService(nil, nil)

	input := vehicleInput()
	input.Name = "   "
	input.Capacity = -1

	_, err := svc.CreateVehicle(context.Background(), input)
	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "capacity")
	assert.Zero(t, svc.CountVehicles(context.Background()))
}

func TestFleetService_DefaultsHealthStatus(t *testing.T) {
	svc := NewFleetService(nil, nil)

	input := vehicleInput()
	input.HealthStatus = ""
	created, err := svc.CreateVehicle(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusGood, created.HealthStatus)
}

func TestFleetService_ConcurrentAccess(t *testing.T) {
	svc := NewFleetService(InitialVehicles(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.CreateVehicle(ctx, vehicleInput())
		}()
		go func() {
			defer wg.Done()
			_ = svc.ListVehicles(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, 23, svc.CountVehicles(ctx))
}
