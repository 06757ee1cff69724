package utils

import "time"

// Application Constants
const (
	AppName    = "EcoRoute"
	AppVersion = "1.0.0"

	DefaultShutdownTimeout = 10 * time.Second

	// Request metadata
	RequestIDHeader = "X-Request-ID"
	SessionIDHeader = "X-Session-ID"
	RequestIDKey    = "request_id"
	SessionIDKey    = "session_id"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Route optimization messages shown to the user.
const (
	MsgValidationFailed     = "Validation failed. Please check your inputs."
	MsgOptimizationSuccess  = "Route optimization successful!"
	MsgOptimizationFailed   = "An error occurred during route optimization. Please try again."
	MsgSubmissionInProgress = "A route optimization is already in progress. Please wait for it to finish."
)

// Error Messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrNotFound         = "not found"
	ErrConflict         = "conflict"
	ErrValidationFailed = "validation failed"
)

// Environmental consideration choices offered by the route form.
var EnvironmentalConsiderationOptions = []string{"None", "Low Emission Zones", "Avoid Tolls", "Prefer Green Routes"}
