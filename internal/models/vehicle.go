package models

import "strings"

type VehicleType string

const (
	VehicleTypeVan           VehicleType = "Van"
	VehicleTypeTruckLight    VehicleType = "Truck (Light)"
	VehicleTypeTruckHeavy    VehicleType = "Truck (Heavy)"
	VehicleTypeCar           VehicleType = "Car"
	VehicleTypeMotorcycle    VehicleType = "Motorcycle"
	VehicleTypeCargoBike     VehicleType = "Cargo Bike"
	VehicleTypeElectricVan   VehicleType = "Electric Van"
	VehicleTypeElectricTruck VehicleType = "Electric Truck"
)

var VehicleTypes = []VehicleType{
	VehicleTypeVan,
	VehicleTypeTruckLight,
	VehicleTypeTruckHeavy,
	VehicleTypeCar,
	VehicleTypeMotorcycle,
	VehicleTypeCargoBike,
	VehicleTypeElectricVan,
	VehicleTypeElectricTruck,
}

type HealthStatus string

const (
	HealthStatusGood            HealthStatus = "Good"
	HealthStatusMaintenanceSoon HealthStatus = "Maintenance Soon"
	HealthStatusNeedsRepair     HealthStatus = "Needs Repair"
)

var HealthStatuses = []HealthStatus{
	HealthStatusGood,
	HealthStatusMaintenanceSoon,
	HealthStatusNeedsRepair,
}

type FuelType string

const (
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeGasoline FuelType = "Gasoline"
	FuelTypeElectric FuelType = "Electric"
	FuelTypeHybrid   FuelType = "Hybrid"
)

var FuelTypes = []FuelType{
	FuelTypeDiesel,
	FuelTypeGasoline,
	FuelTypeElectric,
	FuelTypeHybrid,
}

// Vehicle is a fleet entry. It lives only in process memory.
type Vehicle struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         VehicleType  `json:"type"`
	Capacity     int          `json:"capacity"` // kg
	HealthStatus HealthStatus `json:"healthStatus"`
	FuelType     FuelType     `json:"fuelType,omitempty"`
	Registration string       `json:"registration,omitempty"`
	PurchaseDate string       `json:"purchaseDate,omitempty"`
}

// IsElectricVehicleType matches free-text vehicle types such as "Electric Van"
// or "EV truck" as well as the enumerated ones.
func IsElectricVehicleType(vehicleType string) bool {
	t := strings.ToLower(strings.TrimSpace(vehicleType))
	if strings.Contains(t, "electric") {
		return true
	}
	for _, word := range strings.FieldsFunc(t, func(r rune) bool { return r == ' ' || r == '-' || r == '(' || r == ')' }) {
		if word == "ev" || word == "bev" {
			return true
		}
	}
	return false
}

func IsCargoBikeVehicleType(vehicleType string) bool {
	t := strings.ToLower(strings.TrimSpace(vehicleType))
	return strings.Contains(t, "bike") || strings.Contains(t, "bicycle")
}
