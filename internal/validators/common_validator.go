package validators

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"ecoroute/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors line up with form inputs.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Register custom validation functions
	validate.RegisterValidation("eco_option", validateEcoOption)
	validate.RegisterValidation("vehicle_type", validateVehicleType)
	validate.RegisterValidation("health_status", validateHealthStatus)
	validate.RegisterValidation("fuel_type", validateFuelType)
}

// Validator exposes the shared instance for packages that check decoded payloads.
func Validator() *validator.Validate {
	return validate
}

// FieldErrors maps a field name to its human-readable messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	for _, existing := range f[field] {
		if existing == message {
			return
		}
	}
	f[field] = append(f[field], message)
}

func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, strings.Join(f[field], ", ")))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates s and collects messages per field. Messages found in
// overrides (keyed "field.tag" or "field") replace the generic wording.
func ValidateStruct(s interface{}, overrides map[string]string) FieldErrors {
	fieldErrors := FieldErrors{}

	err := validate.Struct(s)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors.Add("_", err.Error())
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), messageFor(fe, overrides))
	}

	return fieldErrors
}

func messageFor(fe validator.FieldError, overrides map[string]string) string {
	if msg, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := overrides[fe.Field()]; ok {
		return msg
	}
	return getErrorMessage(fe)
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", err.Field(), err.Param())
	case "eco_option":
		return "Preferred eco option must be one of standard, ev_optimized, bike_optimized, not_specified."
	case "vehicle_type":
		return "Invalid vehicle type"
	case "health_status":
		return "Invalid health status"
	case "fuel_type":
		return "Invalid fuel type"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateEcoOption(fl validator.FieldLevel) bool {
	return models.EcoOption(fl.Field().String()).IsValid()
}

func validateVehicleType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, t := range models.VehicleTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}

func validateHealthStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, s := range models.HealthStatuses {
		if string(s) == value {
			return true
		}
	}
	return false
}

func validateFuelType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, f := range models.FuelTypes {
		if string(f) == value {
			return true
		}
	}
	return false
}

// isText reports whether v arrived as text. Missing values count as text so
// that required checks report them instead.
func isText(v interface{}) bool {
	switch v.(type) {
	case nil, string, []string:
		return true
	}
	return false
}

// coerceString turns a raw form value into a string. Missing values become "".
func coerceString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []string:
		if len(value) == 0 {
			return ""
		}
		return value[0]
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// coerceNumber converts a raw form value to a float. Blank and missing values
// coerce to zero; anything unparseable or infinite yields NaN so that range
// checks reject it.
func coerceNumber(v interface{}) float64 {
	var n float64
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int:
		n = float64(value)
	case int64:
		n = float64(value)
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return math.NaN()
		}
		n = f
	case string, []string:
		s := strings.TrimSpace(coerceString(value))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		n = f
	default:
		return math.NaN()
	}
	if math.IsInf(n, 0) {
		return math.NaN()
	}
	return n
}
