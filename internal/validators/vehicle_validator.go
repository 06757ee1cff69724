package validators

// VehicleInput is the body of a fleet create or update call.
type VehicleInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Type         string `json:"type" validate:"vehicle_type"`
	Capacity     int    `json:"capacity" validate:"gt=0"`
	HealthStatus string `json:"healthStatus" validate:"health_status"`
	FuelType     string `json:"fuelType" validate:"omitempty,fuel_type"`
	Registration string `json:"registration" validate:"omitempty,max=20"`
	PurchaseDate string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
}

var vehicleMessages = map[string]string{
	"name.required": "Vehicle name is required.",
	"capacity":      "Capacity must be a positive whole number of kilograms.",
	"type":          "Vehicle type must be one of the supported fleet types.",
	"healthStatus":  "Health status must be Good, Maintenance Soon or Needs Repair.",
	"fuelType":      "Fuel type must be Diesel, Gasoline, Electric or Hybrid.",
	"purchaseDate":  "Purchase date must be formatted as YYYY-MM-DD.",
}

func ValidateVehicle(req *VehicleInput) FieldErrors {
	return ValidateStruct(req, vehicleMessages)
}
