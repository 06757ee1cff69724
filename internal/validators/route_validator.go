package validators

import (
	"strings"

	"ecoroute/internal/models"
)

// Form field names accepted by the route optimization form.
const (
	FieldOrigin                      = "origin"
	FieldDestination                 = "destination"
	FieldVehicleCapacity             = "vehicleCapacity"
	FieldVehicleType                 = "vehicleType"
	FieldEnvironmentalConsiderations = "environmentalConsiderations"
	FieldPreferredEcoOption          = "preferredEcoOption"
	FieldDepartureDateTime           = "departureDateTime"
	FieldUserPreferences             = "userPreferences"
)

// RouteFormFields lists every field the route form posts.
var RouteFormFields = []string{
	FieldOrigin,
	FieldDestination,
	FieldVehicleCapacity,
	FieldVehicleType,
	FieldEnvironmentalConsiderations,
	FieldPreferredEcoOption,
	FieldDepartureDateTime,
	FieldUserPreferences,
}

// RawFields holds untyped form input keyed by field name.
type RawFields map[string]interface{}

// String returns the raw value of field coerced to a string.
func (r RawFields) String(field string) string {
	return coerceString(r[field])
}

type routeRequestInput struct {
	Origin                      string  `json:"origin" validate:"min=3"`
	Destination                 string  `json:"destination" validate:"min=3"`
	VehicleCapacity             float64 `json:"vehicleCapacity" validate:"gt=0"`
	VehicleType                 string  `json:"vehicleType" validate:"required"`
	EnvironmentalConsiderations string  `json:"environmentalConsiderations" validate:"required"`
	PreferredEcoOption          string  `json:"preferredEcoOption" validate:"eco_option"`
}

var routeMessages = map[string]string{
	FieldOrigin:                      "Origin must be at least 3 characters.",
	FieldDestination:                 "Destination must be at least 3 characters.",
	FieldVehicleCapacity:             "Vehicle capacity must be a positive number.",
	FieldVehicleType:                 "Vehicle type is required.",
	FieldEnvironmentalConsiderations: "Environmental considerations are required.",
}

// textMessages covers the fields that must arrive as text. A JSON number or
// boolean is rejected rather than stringified.
var textMessages = map[string]string{
	FieldOrigin:                      "Origin must be text.",
	FieldDestination:                 "Destination must be text.",
	FieldVehicleType:                 "Vehicle type must be text.",
	FieldEnvironmentalConsiderations: "Environmental considerations must be text.",
	FieldPreferredEcoOption:          "Preferred eco option must be text.",
	FieldDepartureDateTime:           "Departure time must be text.",
	FieldUserPreferences:             "User preferences must be text.",
}

// ValidateRouteRequest checks raw form input and returns either a validated
// request or the per-field errors. It has no side effects.
func ValidateRouteRequest(raw RawFields) (*models.RouteRequest, FieldErrors) {
	ecoOption := strings.TrimSpace(raw.String(FieldPreferredEcoOption))
	if ecoOption == "" {
		ecoOption = string(models.EcoOptionNotSpecified)
	}

	input := routeRequestInput{
		Origin:                      raw.String(FieldOrigin),
		Destination:                 raw.String(FieldDestination),
		VehicleCapacity:             coerceNumber(raw[FieldVehicleCapacity]),
		VehicleType:                 raw.String(FieldVehicleType),
		EnvironmentalConsiderations: raw.String(FieldEnvironmentalConsiderations),
		PreferredEcoOption:          ecoOption,
	}

	errs := ValidateStruct(&input, routeMessages)
	for field, message := range textMessages {
		if !isText(raw[field]) {
			errs[field] = []string{message}
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	return &models.RouteRequest{
		Origin:                      input.Origin,
		Destination:                 input.Destination,
		VehicleCapacityKg:           input.VehicleCapacity,
		VehicleType:                 input.VehicleType,
		EnvironmentalConsiderations: input.EnvironmentalConsiderations,
		PreferredEcoOption:          models.EcoOption(input.PreferredEcoOption),
		DepartureDateTime:           raw.String(FieldDepartureDateTime),
		UserPreferences:             raw.String(FieldUserPreferences),
	}, nil
}
