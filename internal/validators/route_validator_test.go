package validators

import (
	"encoding/json"
	"testing"

	"ecoroute/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawFields() RawFields {
	return RawFields{
		FieldOrigin:                      "123 Main St, Anytown",
		FieldDestination:                 "456 Oak Ave, Otherville",
		FieldVehicleCapacity:             "1000",
		FieldVehicleType:                 "Van",
		FieldEnvironmentalConsiderations: "Low Emission Zones",
		FieldPreferredEcoOption:          "standard",
	}
}

func TestValidateRouteRequest_Valid(t *testing.T) {
	req, errs := ValidateRouteRequest(validRawFields())
	require.Nil(t, errs)
	require.NotNil(t, req)

	assert.Equal(t, "123 Main St, Anytown", req.Origin)
	assert.Equal(t, 1000.0, req.VehicleCapacityKg)
	assert.Equal(t, models.EcoOptionStandard, req.PreferredEcoOption)
	assert.False(t, req.HasDeparture())
	assert.False(t, req.HasUserPreferences())
}

func TestValidateRouteRequest_ShortAddresses(t *testing.T) {
	for _, value := range []string{"", "a", "ab"} {
		raw := validRawFields()
		raw[FieldOrigin] = value
		raw[FieldDestination] = value

		req, errs := ValidateRouteRequest(raw)
		assert.Nil(t, req, "value %q", value)
		assert.Equal(t, []string{"Origin must be at least 3 characters."}, errs[FieldOrigin])
		assert.Equal(t, []string{"Destination must be at least 3 characters."}, errs[FieldDestination])
	}

	raw := validRawFields()
	raw[FieldOrigin] = "abc"
	_, errs := ValidateRouteRequest(raw)
	assert.Nil(t, errs, "three characters is the minimum")
}

func TestValidateRouteRequest_Capacity(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		ok    bool
	}{
		{"zero string", "0", false},
		{"negative", "-5", false},
		{"blank", "", false},
		{"missing", nil, false},
		{"not a number", "heavy", false},
		{"infinity", "Inf", false},
		{"tiny positive", "0.0001", true},
		{"json float", 250.5, true},
		{"json number", json.Number("42"), true},
		{"json zero", 0.0, false},
		{"padded", " 12 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawFields()
			raw[FieldVehicleCapacity] = tt.value

			req, errs := ValidateRouteRequest(raw)
			if tt.ok {
				require.Nil(t, errs)
				assert.Greater(t, req.VehicleCapacityKg, 0.0)
				return
			}
			assert.Nil(t, req)
			assert.Equal(t, []string{"Vehicle capacity must be a positive number."}, errs[FieldVehicleCapacity])
		})
	}
}

func TestValidateRouteRequest_RequiredStrings(t *testing.T) {
	raw := validRawFields()
	delete(raw, FieldVehicleType)
	raw[FieldEnvironmentalConsiderations] = ""

	_, errs := ValidateRouteRequest(raw)
	assert.Equal(t, []string{"Vehicle type is required."}, errs[FieldVehicleType])
	assert.Equal(t, []string{"Environmental considerations are required."}, errs[FieldEnvironmentalConsiderations])
	assert.Len(t, errs, 2)
}

func TestValidateRouteRequest_EcoOption(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		raw := validRawFields()
		delete(raw, FieldPreferredEcoOption)
		req, errs := ValidateRouteRequest(raw)
		require.Nil(t, errs)
		assert.Equal(t, models.EcoOptionNotSpecified, req.PreferredEcoOption)
	})

	t.Run("rejects unknown", func(t *testing.T) {
		raw := validRawFields()
		raw[FieldPreferredEcoOption] = "hovercraft"
		_, errs := ValidateRouteRequest(raw)
		require.Contains(t, errs, FieldPreferredEcoOption)
	})

	for _, option := range models.EcoOptions {
		raw := validRawFields()
		raw[FieldPreferredEcoOption] = string(option)
		req, errs := ValidateRouteRequest(raw)
		require.Nil(t, errs, string(option))
		assert.Equal(t, option, req.PreferredEcoOption)
	}
}

func TestValidateRouteRequest_OptionalPassthrough(t *testing.T) {
	raw := validRawFields()
	raw[FieldDepartureDateTime] = "2024-07-15T08:30"
	raw[FieldUserPreferences] = "avoid highways"

	req, errs := ValidateRouteRequest(raw)
	require.Nil(t, errs)
	assert.Equal(t, "2024-07-15T08:30", req.DepartureDateTime)
	assert.Equal(t, "avoid highways", req.UserPreferences)
	assert.True(t, req.HasDeparture())
}

func TestValidateRouteRequest_RejectsNonTextValues(t *testing.T) {
	raw := validRawFields()
	raw[FieldOrigin] = json.Number("12345")
	raw[FieldVehicleType] = true
	raw[FieldUserPreferences] = 7.0

	req, errs := ValidateRouteRequest(raw)
	assert.Nil(t, req)
	assert.Equal(t, []string{"Origin must be text."}, errs[FieldOrigin])
	assert.Equal(t, []string{"Vehicle type must be text."}, errs[FieldVehicleType])
	assert.Equal(t, []string{"User preferences must be text."}, errs[FieldUserPreferences])
	assert.NotContains(t, errs, FieldDestination)

	raw = validRawFields()
	raw[FieldOrigin] = []string{"123 Main St, Anytown"}
	_, errs = ValidateRouteRequest(raw)
	assert.Nil(t, errs, "form posts arrive as string slices")
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("origin", "too short")
	errs.Add("origin", "too short")
	errs.Add("destination", "missing")

	assert.Equal(t, "destination: missing; origin: too short", errs.Error())
}

func TestValidateVehicle(t *testing.T) {
	valid := VehicleInput{
		Name:         "Eco Van 2",
		Type:         "Electric Van",
		Capacity:     1100,
		HealthStatus: "Good",
		FuelType:     "Electric",
		PurchaseDate: "2024-03-01",
	}
	assert.Empty(t, ValidateVehicle(&valid))

	invalid := valid
	invalid.Name = ""
	invalid.Type = "Hovercraft"
	invalid.Capacity = 0
	invalid.FuelType = "Steam"
	invalid.PurchaseDate = "03/01/2024"

	errs := ValidateVehicle(&invalid)
	assert.Equal(t, []string{"Vehicle name is required."}, errs["name"])
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "capacity")
	assert.Contains(t, errs, "fuelType")
	assert.Contains(t, errs, "purchaseDate")
	assert.NotContains(t, errs, "healthStatus")
}
